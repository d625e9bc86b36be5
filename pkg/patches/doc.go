// Package patches builds the list of patches to declare in a spec file,
// either from a manifest (YAML or TOML) or by scanning a directory of
// git-format-patch output.
package patches

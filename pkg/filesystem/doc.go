// Package filesystem provides filesystem implementations for specedit.
//
// This package contains implementations of the types.FS interface backed by
// the OS or by an afero filesystem, plus the atomic write used when saving
// spec files.
package filesystem

// Package types defines the core types and interfaces used throughout specedit.
// This includes the Tag and PatchMetadata records exchanged between the spec
// document and the editor, the TagFilter query, and the FS interface every
// component reads and writes spec files through.
package types

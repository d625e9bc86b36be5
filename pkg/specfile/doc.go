// Package specfile edits RPM spec files: version, release and changelog
// fields, Source values, the %prep setup line, and Patch declarations.
//
// Specfile works against the Document contract. rpmspec.Spec is the
// implementation used in production; tests may pass any Document.
//
// Patch placement follows one rule: a new Patch tag goes to the first blank
// line after the last existing Patch tag, or after the last Source tag when
// the spec declares no patches yet. If the preamble has no such blank line
// the block is appended to the end of the preamble.
package specfile

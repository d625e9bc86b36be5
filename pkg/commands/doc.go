// Package commands provides the command implementations behind the
// specedit CLI.
//
// Each command opens the spec through a session, which resolves the
// configuration next to the spec, picks the real or the dry-run
// filesystem, and turns the before/after text into an EditResult with a
// unified diff. The cobra layer only parses flags and renders results.
package commands

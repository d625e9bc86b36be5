// Package rpmspec holds an RPM spec file as an ordered list of sections and
// indexes its `Name: value` tag lines.
//
// The package splits text on section macros (%prep, %files, %changelog, ...)
// and writes it back byte for byte. It does not expand macros and does not
// evaluate conditionals: a tag inside an %if block is reported with
// Valid=false and left for the caller to judge.
//
// The first section holds everything before the first section macro and is
// named "%package", so the main package preamble and the subpackage
// preambles are addressed the same way.
package rpmspec

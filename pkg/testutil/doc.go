// Package testutil provides test environments and spec fixtures shared by
// the specedit test suites.
//
// A TestEnvironment owns a working directory, either in memory (afero
// MemMapFs) or in a real temp directory, and points the XDG config and
// state directories plus the log file into the test sandbox so user
// settings never leak into a run.
package testutil

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/specedit/pkg/logging"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// MemoryRoot is the working directory of in-memory environments
const MemoryRoot = "/work"

// TestEnvironment is a sandboxed working directory for spec files
type TestEnvironment struct {
	// Root is the working directory holding spec files.
	Root string
	// Fs backs Root: a MemMapFs or the OS filesystem.
	Fs   afero.Fs
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	sandbox := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(sandbox, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(sandbox, "state"))
	t.Setenv(logging.EnvLogFile, filepath.Join(sandbox, "specedit.log"))

	env := &TestEnvironment{Type: envType, t: t}
	switch envType {
	case EnvMemoryOnly:
		env.Root = MemoryRoot
		env.Fs = afero.NewMemMapFs()
	case EnvIsolated:
		env.Root = filepath.Join(sandbox, "work")
		env.Fs = afero.NewOsFs()
	default:
		t.Fatalf("unknown environment type %d", envType)
	}
	require.NoError(t, env.Fs.MkdirAll(env.Root, 0755))
	return env
}

// Path joins rel onto the environment root
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.Root, rel)
}

// WriteFile writes content at rel, creating parent directories, and
// returns the full path.
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	path := env.Path(rel)
	require.NoError(env.t, env.Fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, afero.WriteFile(env.Fs, path, []byte(content), 0644))
	return path
}

// ReadFile returns the content of rel
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.Fs, env.Path(rel))
	require.NoError(env.t, err)
	return string(data)
}

// FileTree represents a directory structure for testing: string values are
// file contents, FileTree values are subdirectories.
type FileTree map[string]interface{}

// WithFileTree creates tree under the environment root
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	env.createFileTree("", tree)
}

func (env *TestEnvironment) createFileTree(base string, tree FileTree) {
	env.t.Helper()

	for name, content := range tree {
		rel := filepath.Join(base, name)
		switch v := content.(type) {
		case string:
			env.WriteFile(rel, v)
		case FileTree:
			require.NoError(env.t, env.Fs.MkdirAll(env.Path(rel), 0755))
			env.createFileTree(rel, v)
		default:
			env.t.Fatalf("Invalid file tree content type for %s: %T", rel, content)
		}
	}
}

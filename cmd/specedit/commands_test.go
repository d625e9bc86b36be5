package specedit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/testutil"
)

// setupSpec writes HelloSpec into an isolated working directory.
func setupSpec(t *testing.T) string {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	return env.WriteFile("hello.spec", testutil.HelloSpec)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--format", "text"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSetVersionCmd(t *testing.T) {
	spec := setupSpec(t)

	out, err := execute(t, "set-version", "--spec", spec,
		"--version", "1.1", "--release", "1", "--changelog", "- Update to 1.1",
		"--author", "CI", "--email", "ci@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "hello.spec: updated")

	content := readFile(t, spec)
	assert.Contains(t, content, "Version: 1.1\n")
	assert.Contains(t, content, "Release: 1%{?dist}\n")
	assert.Contains(t, content, "CI <ci@example.com> - 1.1-1\n- Update to 1.1\n")
}

func TestDryRunFlag(t *testing.T) {
	spec := setupSpec(t)

	out, err := execute(t, "--dry-run", "bump-release", "--spec", spec, "--commit", "abc123")
	require.NoError(t, err)

	assert.Contains(t, out, "+Release: 4.gabc123%{?dist}")
	assert.Contains(t, out, "DRY RUN")
	assert.Equal(t, testutil.HelloSpec, readFile(t, spec))
}

func TestAddPatchesCmd(t *testing.T) {
	spec := setupSpec(t)
	patchDir := filepath.Join(filepath.Dir(spec), "patches")
	require.NoError(t, os.MkdirAll(patchDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(patchDir, "fix.patch"), []byte("Subject: [PATCH] Fix it\n"), 0644))

	out, err := execute(t, "add-patches", "--spec", spec, "--dir", patchDir)
	require.NoError(t, err)
	assert.Contains(t, out, "added    fix.patch")
	assert.Contains(t, readFile(t, spec), "Source1: hello.conf\n\n# Fix it\nPatch0001: fix.patch\n\n%description")

	_, err = execute(t, "add-patches", "--spec", spec)
	assert.Error(t, err, "one of --manifest and --dir is required")
}

func TestProjectConfigIsUsed(t *testing.T) {
	spec := setupSpec(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(spec), ".specedit.toml"),
		[]byte("[spec]\nsource_id = \"Source1\"\n"), 0644))

	_, err := execute(t, "set-source", "--spec", spec, "--value", "hello-1.1.tar.gz")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, spec), "Source1: hello-1.1.tar.gz\n")
}

func TestQueryCmds(t *testing.T) {
	spec := setupSpec(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "release", args: []string{"release", "--spec", spec}, want: "3\n"},
		{name: "tags", args: []string{"tags", "--spec", spec, "--name", "V*"}, want: "Version: 1.0\n"},
		{name: "conditional tags only", args: []string{"tags", "--spec", spec, "--valid=false"}, want: ""},
		{name: "changelog", args: []string{"changelog", "--spec", spec}, want: "* Mon Jan 01 2024 Jane Doe <jane@example.com> - 1.0-3\n- Rebuilt\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFixPrepCmd(t *testing.T) {
	spec := setupSpec(t)

	_, err := execute(t, "fix-prep", "--spec", spec, "--root-dir", "src")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, spec), "%prep\n%setup -q -n src\n")
}

func TestErrors(t *testing.T) {
	spec := setupSpec(t)

	t.Run("invalid valid flag", func(t *testing.T) {
		_, err := execute(t, "tags", "--spec", spec, "--valid", "maybe")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := execute(t, "release", "--spec", spec, "--format", "yaml")
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("missing spec", func(t *testing.T) {
		_, err := execute(t, "release", "--spec", filepath.Join(t.TempDir(), "nope.spec"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
	})

	t.Run("render error", func(t *testing.T) {
		cmd := NewRootCmd()
		out := &bytes.Buffer{}
		cmd.SetErr(out)
		RenderError(cmd, errors.New(errors.ErrSetupNotFound, "no %setup line in %prep"))
		assert.Equal(t, "Error: no %setup line in %prep\n", out.String())
	})
}

func TestMiscCmds(t *testing.T) {
	setupSpec(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "specedit version dev")

	out, err = execute(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Contains(t, out, "[changelog]")

	out, err = execute(t, "config", "--dist", ".fc40")
	require.NoError(t, err)
	assert.Contains(t, out, `dist=".fc40"`)

	out, err = execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "specedit")

	out, err = execute(t, "man")
	require.NoError(t, err)
	assert.Contains(t, out, "SPECEDIT")
}

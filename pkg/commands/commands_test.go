package commands

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/testutil"
	"github.com/arthur-debert/specedit/pkg/types"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
}

var specPath = testutil.MemoryRoot + "/hello.spec"

// setup returns an in-memory environment holding HelloSpec.
func setup(t *testing.T) (*testutil.TestEnvironment, SpecOptions) {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile("hello.spec", testutil.HelloSpec)

	return env, SpecOptions{
		SpecPath: specPath,
		Fs:       env.Fs,
		Now:      fixedNow,
		Overrides: map[string]interface{}{
			"changelog.author": "Jane Doe",
			"changelog.email":  "jane@example.com",
		},
	}
}

func read(t *testing.T, env *testutil.TestEnvironment) string {
	t.Helper()
	return env.ReadFile("hello.spec")
}

func TestSetVersion(t *testing.T) {
	env, opts := setup(t)

	result, err := SetVersion(SetVersionOptions{
		SpecOptions: opts,
		Version:     "1.1",
		Release:     "1",
		Changelog:   "- New upstream release",
	})
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.False(t, result.DryRun)
	assert.Equal(t, "set-version", result.Command)
	assert.Contains(t, result.Diff, "+Version: 1.1")

	content := read(t, env)
	assert.Contains(t, content, "Version: 1.1\n")
	assert.Contains(t, content, "Release: 1%{?dist}\n")
	assert.Contains(t, content, "%changelog\n* Tue Mar 05 2024 Jane Doe <jane@example.com> - 1.1-1\n- New upstream release\n\n* Mon Jan 01 2024")
}

func TestSetVersionRequiresSomething(t *testing.T) {
	_, opts := setup(t)

	_, err := SetVersion(SetVersionOptions{SpecOptions: opts})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDryRunKeepsSpecUntouched(t *testing.T) {
	env, opts := setup(t)
	opts.DryRun = true

	result, err := SetVersion(SetVersionOptions{SpecOptions: opts, Release: "4"})
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.True(t, result.Changed)
	assert.Contains(t, result.Diff, "-Release: 3%{?dist}")
	assert.Contains(t, result.Diff, "+Release: 4%{?dist}")
	assert.Equal(t, testutil.HelloSpec, read(t, env))
}

func TestMissingSpec(t *testing.T) {
	_, opts := setup(t)
	opts.SpecPath = testutil.MemoryRoot + "/missing.spec"

	_, err := Release(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	opts.SpecPath = ""
	_, err = Release(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRelease(t *testing.T) {
	_, opts := setup(t)

	result, err := Release(opts)
	require.NoError(t, err)
	assert.Equal(t, &types.ReleaseResult{
		Spec:    specPath,
		Version: "1.0",
		Release: "3%{?dist}",
		Number:  "3",
	}, result)
}

func TestReleaseStripsConfiguredDist(t *testing.T) {
	env, opts := setup(t)
	env.WriteFile("hello.spec", "Version: 2\nRelease: 3.fc30%{?dist}\n")
	opts.Overrides["spec.dist"] = ".fc30"

	result, err := Release(opts)
	require.NoError(t, err)
	assert.Equal(t, "3", result.Number)
}

func TestBumpRelease(t *testing.T) {
	env, opts := setup(t)

	result, err := BumpRelease(BumpReleaseOptions{SpecOptions: opts, Commit: "abc123"})
	require.NoError(t, err)
	assert.True(t, result.Changed)

	content := read(t, env)
	assert.Contains(t, content, "Release: 4.gabc123%{?dist}\n")
	assert.Contains(t, content, "- Downstream changes (abc123)\n")

	_, err = BumpRelease(BumpReleaseOptions{SpecOptions: opts})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestChangelog(t *testing.T) {
	env, opts := setup(t)

	result, err := Changelog(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"* Mon Jan 01 2024 Jane Doe <jane@example.com> - 1.0-3", "- Rebuilt"}, result.Lines)

	env.WriteFile("hello.spec", "Name: x\n")
	_, err = Changelog(opts)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSectionNotFound))
}

func TestSetSource(t *testing.T) {
	tests := []struct {
		name     string
		sourceID string
		want     string
	}{
		{name: "configured default", sourceID: "", want: "Source0: https://example.com/hello-1.1.tar.gz\n"},
		{name: "explicit id", sourceID: "Source1", want: "Source1: https://example.com/hello-1.1.tar.gz\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, opts := setup(t)

			result, err := SetSource(SetSourceOptions{
				SpecOptions: opts,
				SourceID:    tt.sourceID,
				Value:       "https://example.com/hello-1.1.tar.gz",
			})
			require.NoError(t, err)
			assert.True(t, result.Changed)
			assert.Contains(t, read(t, env), tt.want)
		})
	}

	t.Run("unknown source", func(t *testing.T) {
		_, opts := setup(t)
		_, err := SetSource(SetSourceOptions{SpecOptions: opts, SourceID: "Source9", Value: "x"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrSourceNotFound))
	})
}

func TestFixPrep(t *testing.T) {
	env, opts := setup(t)

	result, err := FixPrep(FixPrepOptions{SpecOptions: opts, RootDir: "hello-src"})
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Contains(t, read(t, env), "%prep\n%setup -q -n hello-src\n")

	_, err = FixPrep(FixPrepOptions{SpecOptions: opts})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestListTags(t *testing.T) {
	_, opts := setup(t)

	result, err := ListTags(TagsOptions{SpecOptions: opts, Filter: types.TagFilter{Name: "Source*"}})
	require.NoError(t, err)
	require.Len(t, result.Tags, 2)
	assert.Equal(t, "Source0", result.Tags[0].Name)
	assert.Equal(t, "hello.conf", result.Tags[1].Value)

	_, err = ListTags(TagsOptions{SpecOptions: opts, Filter: types.TagFilter{Name: "[Source"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidTagFilter))
}

func TestAddPatchesFromDirectory(t *testing.T) {
	env, opts := setup(t)
	env.WithFileTree(testutil.FileTree{
		"patches": testutil.FileTree{
			"0001-fix-build.patch": "From abc Mon Sep 17 00:00:00 2001\nSubject: [PATCH 1/2] Fix the build\n\n---\n",
			"0002-docs.patch":      testutil.GitPatch("Update docs"),
			"README":               "notes\n",
		},
	})

	result, err := AddPatches(AddPatchesOptions{SpecOptions: opts, Dir: env.Path("patches")})
	require.NoError(t, err)

	assert.Equal(t, []types.PatchOutcome{
		{Name: "0001-fix-build.patch", Status: types.PatchStatusAdded},
		{Name: "0002-docs.patch", Status: types.PatchStatusAdded},
	}, result.Patches)
	assert.Contains(t, read(t, env),
		"Source1: hello.conf\n\n# Fix the build\nPatch0001: 0001-fix-build.patch\n\n# Update docs\nPatch0002: 0002-docs.patch\n\n%description")

	t.Run("second run is a no-op", func(t *testing.T) {
		result, err := AddPatches(AddPatchesOptions{SpecOptions: opts, Dir: env.Path("patches")})
		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Empty(t, result.Diff)
		for _, p := range result.Patches {
			assert.Equal(t, types.PatchStatusPresent, p.Status)
		}
	})
}

func TestAddPatchesFromManifest(t *testing.T) {
	env, opts := setup(t)
	manifest := env.WriteFile("patches.yaml", `patches:
  - name: fix.patch
    comment: Fix a crash
  - name: fix.patch
`)

	result, err := AddPatches(AddPatchesOptions{SpecOptions: opts, Manifest: manifest})
	require.NoError(t, err)

	assert.Equal(t, []types.PatchOutcome{
		{Name: "fix.patch", Status: types.PatchStatusAdded},
		{Name: "fix.patch", Status: types.PatchStatusPresent},
	}, result.Patches)
	assert.Contains(t, read(t, env), "# Fix a crash\nPatch0001: fix.patch\n")
}

func TestAddPatchesNeedsOneSource(t *testing.T) {
	_, opts := setup(t)

	_, err := AddPatches(AddPatchesOptions{SpecOptions: opts})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = AddPatches(AddPatchesOptions{SpecOptions: opts, Manifest: "m.yaml", Dir: "patches"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestAddPatchesAfterHighestIndex(t *testing.T) {
	env, opts := setup(t)
	env.WriteFile("hello.spec", testutil.PatchedSpec)
	env.WriteFile("patches/new.patch", testutil.GitPatch("Add feature"))

	result, err := AddPatches(AddPatchesOptions{SpecOptions: opts, Dir: env.Path("patches")})
	require.NoError(t, err)
	assert.True(t, result.Changed)

	assert.Contains(t, read(t, env),
		"%ifarch aarch64\nPatch0007: 0007-arm.patch\n%endif\n\n# Add feature\nPatch0008: new.patch\n\n%prep")
}

package patches

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/filesystem"
	"github.com/arthur-debert/specedit/pkg/rpmspec"
	"github.com/arthur-debert/specedit/pkg/specfile"
	"github.com/arthur-debert/specedit/pkg/types"
)

func TestLoadManifest(t *testing.T) {
	yamlManifest := `patches:
  - name: 0001-fix-build.patch
    comment: |-
      Fix the build
      with gcc 14
  - name: 0002-docs.patch
    comment: Docs
    present_in_specfile: true
`
	tomlManifest := `[[patches]]
name = "0001-fix-build.patch"
comment = """Fix the build
with gcc 14"""

[[patches]]
name = "0002-docs.patch"
comment = "Docs"
present_in_specfile = true
`
	want := []types.PatchMetadata{
		{Name: "0001-fix-build.patch", SpecfileComment: "Fix the build\nwith gcc 14"},
		{Name: "0002-docs.patch", SpecfileComment: "Docs", PresentInSpecfile: true},
	}

	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"yaml", "/m/patches.yaml", yamlManifest},
		{"yml", "/m/patches.yml", yamlManifest},
		{"toml", "/m/patches.toml", tomlManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMemory()
			require.NoError(t, fs.WriteFile(tt.path, []byte(tt.content), 0644))

			got, err := LoadManifest(fs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestLoadManifestErrors(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.WriteFile("/m/list.json", []byte("{}"), 0644))
	require.NoError(t, fs.WriteFile("/m/broken.yaml", []byte("patches: [\n"), 0644))
	require.NoError(t, fs.WriteFile("/m/noname.yaml", []byte("patches:\n  - comment: x\n"), 0644))

	tests := []struct {
		name string
		path string
		code errors.ErrorCode
	}{
		{"missing", "/m/none.yaml", errors.ErrFileNotFound},
		{"unknown extension", "/m/list.json", errors.ErrManifestParse},
		{"broken yaml", "/m/broken.yaml", errors.ErrManifestParse},
		{"entry without name", "/m/noname.yaml", errors.ErrPatchInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadManifest(fs, tt.path)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

const formatPatch = `From 1234abcd Mon Sep 17 00:00:00 2001
From: Jane Doe <jane@example.com>
Date: Tue, 5 Mar 2024 10:00:00 +0000
Subject: [PATCH 1/2] Fix the build with a very long subject line that
 git folded onto a second line

Subject: not a header
---
 src/main.c | 2 +-
`

func TestDiscover(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/work/patches/sub", 0755))
	require.NoError(t, fs.WriteFile("/work/patches/0002-plain.patch", []byte("--- a\n+++ b\n"), 0644))
	require.NoError(t, fs.WriteFile("/work/patches/0001-fix.patch", []byte(formatPatch), 0644))
	require.NoError(t, fs.WriteFile("/work/patches/notes.txt", []byte("x"), 0644))

	got, err := Discover(fs, "/work/patches", "")
	require.NoError(t, err)

	assert.Equal(t, []types.PatchMetadata{
		{Name: "0001-fix.patch", SpecfileComment: "Fix the build with a very long subject line that git folded onto a second line"},
		{Name: "0002-plain.patch", SpecfileComment: "0002-plain.patch"},
	}, got)

	got, err = Discover(fs, "/work/patches", "*.txt")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "notes.txt", got[0].Name)
}

func TestDiscoverErrors(t *testing.T) {
	fs := filesystem.NewMemory()

	_, err := Discover(fs, "/missing", "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	_, err = Discover(fs, "/missing", "[")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestMarkPresent(t *testing.T) {
	spec := specfile.New(rpmspec.Parse("Source0: a.tar.gz\nPatch1: patches/one.patch\n"), specfile.Options{})

	in := []types.PatchMetadata{{Name: "one.patch"}, {Name: "two.patch"}}
	out := MarkPresent(in, spec)

	assert.True(t, out[0].PresentInSpecfile)
	assert.False(t, out[1].PresentInSpecfile)
	assert.False(t, in[0].PresentInSpecfile, "input is not modified")
}

func TestMarkPresentLowercaseTags(t *testing.T) {
	spec := specfile.New(rpmspec.Parse("source0: a.tar.gz\npatch0005: old.patch\n"), specfile.Options{})

	out := MarkPresent([]types.PatchMetadata{{Name: "old.patch"}, {Name: "new.patch"}}, spec)

	assert.True(t, out[0].PresentInSpecfile)
	assert.False(t, out[1].PresentInSpecfile)
}

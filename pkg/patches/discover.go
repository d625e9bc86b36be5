package patches

import (
	"bufio"
	"bytes"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/logging"
	"github.com/arthur-debert/specedit/pkg/types"
)

// DefaultPattern selects patch files when no pattern is configured.
const DefaultPattern = "*.patch"

var subjectPrefixRE = regexp.MustCompile(`^\[PATCH[^\]]*\]\s*`)

// Discover lists the files of dir matching pattern, sorted by name, and
// uses each patch's Subject header as its spec comment.
func Discover(fsys types.FS, dir, pattern string) ([]types.PatchMetadata, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid patch pattern %q", pattern)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list patch directory %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ok, _ := doublestar.Match(pattern, entry.Name()); ok {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	logger := logging.GetLogger("patches")
	list := make([]types.PatchMetadata, 0, len(names))
	for _, name := range names {
		data, err := fsys.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read patch %s", name)
		}
		comment := subject(data)
		if comment == "" {
			comment = name
		}
		logger.Debug().Str("patch", name).Str("comment", comment).Msg("Patch discovered")
		list = append(list, types.PatchMetadata{Name: name, SpecfileComment: comment})
	}
	return list, nil
}

// subject extracts the Subject header of a git-format-patch file,
// unfolding continuation lines and dropping the [PATCH n/m] prefix.
func subject(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	var parts []string
	inSubject := false
	for scanner.Scan() {
		line := scanner.Text()
		if inSubject {
			if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
				parts = append(parts, strings.TrimSpace(line))
				continue
			}
			break
		}
		if line == "" {
			// end of the mail headers
			break
		}
		if strings.HasPrefix(line, "Subject:") {
			parts = append(parts, strings.TrimSpace(strings.TrimPrefix(line, "Subject:")))
			inSubject = true
		}
	}
	return subjectPrefixRE.ReplaceAllString(strings.Join(parts, " "), "")
}

// Declarer reports the patch names a spec already declares.
type Declarer interface {
	AppliedPatches() []types.Tag
}

// MarkPresent flags the patches already declared in spec.
func MarkPresent(list []types.PatchMetadata, spec Declarer) []types.PatchMetadata {
	declared := make(map[string]struct{})
	for _, tag := range spec.AppliedPatches() {
		declared[path.Base(tag.Value)] = struct{}{}
	}

	out := make([]types.PatchMetadata, len(list))
	for i, p := range list {
		if _, ok := declared[p.Name]; ok {
			p.PresentInSpecfile = true
		}
		out[i] = p
	}
	return out
}

package specfile

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/types"
)

var indexedTagNameRE = regexp.MustCompile(`^(?i)(source|patch)(\d*)$`)

// Tag names are case-insensitive in RPM; the globs match any spelling.
const (
	sourceTagPattern = "[Ss][Oo][Uu][Rr][Cc][Ee]*"
	patchTagPattern  = "[Pp][Aa][Tt][Cc][Hh]*"
)

// sanitizeTagName normalizes Source/Patch tag names: "source" and "Source"
// both become "Source0", "PATCH3" becomes "Patch3". Other names are
// returned unchanged.
func sanitizeTagName(name string) string {
	m := indexedTagNameRE.FindStringSubmatch(name)
	if m == nil {
		return name
	}
	index := m[2]
	if index == "" {
		index = "0"
	}
	return strings.ToUpper(m[1][:1]) + strings.ToLower(m[1][1:]) + index
}

// Source returns the Source tag called name, e.g. "Source1" or "Source".
// Conditional occurrences are included.
func (s *Specfile) Source(name string) (types.Tag, bool) {
	want := sanitizeTagName(name)
	for tag := range s.doc.Tags(types.TagFilter{Name: sourceTagPattern}) {
		if sanitizeTagName(tag.Name) == want {
			return tag, true
		}
	}
	return types.Tag{}, false
}

// SetSourceValue points the Source tag sourceID at value and saves the spec.
func (s *Specfile) SetSourceValue(sourceID, value string) error {
	tag, ok := s.Source(sourceID)
	if !ok {
		return errors.Newf(errors.ErrSourceNotFound,
			"the spec file doesn't have sources set via %s nor Source", sourceID).
			WithDetail("source_id", sourceID)
	}
	if err := s.doc.SetRawTagValue(tag.Name, value, tag.Section); err != nil {
		return err
	}
	s.logger.Debug().Str("tag", tag.Name).Str("value", value).Msg("Source updated")
	return s.doc.Save()
}

var (
	setupLineRE = regexp.MustCompile(`^(\s*%(?:auto)?setup)(.*?)$`)
	setupNameRE = regexp.MustCompile(`(.*?)\s+-n\s+\S+(.*)`)
)

// FixPrepSetup rewrites the first %setup or %autosetup line of %prep so
// that it unpacks into rootDir, replacing any existing -n argument.
// A spec without %prep is left untouched.
func (s *Specfile) FixPrepSetup(rootDir string) error {
	prep, ok := s.doc.Section(prepName)
	if !ok || len(prep) == 0 {
		s.logger.Warn().Msg("This package doesn't have a %prep section")
		return nil
	}

	idx := -1
	var m []string
	for i, line := range prep {
		if m = setupLineRE.FindStringSubmatch(line); m != nil {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Error().Msg("This package is not using %(auto)setup macro in prep")
		return errors.New(errors.ErrSetupNotFound, "no %setup or %autosetup line in %prep")
	}

	newLine := m[1]
	if args := setupNameRE.FindStringSubmatch(m[2]); args != nil {
		newLine += args[1] + args[2]
	} else {
		newLine += m[2]
	}
	newLine += " -n " + rootDir

	s.logger.Debug().Str("line", newLine).Msg("New setup line")
	prep[idx] = newLine
	if err := s.doc.ReplaceSection(prepName, prep); err != nil {
		return err
	}
	return s.doc.Save()
}

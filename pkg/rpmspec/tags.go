package rpmspec

import (
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/types"
)

var (
	// name, optional qualifier such as (pre), separator and value
	tagLineRE = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)(\([^)]*\))?(\s*:\s*)(.*?)\s*$`)
	// Source and Patch carry a numeric index
	indexedTagRE = regexp.MustCompile(`^(?i:source|patch)(\d*)$`)
)

var conditionalOpen = map[string]struct{}{
	"%if":      {},
	"%ifarch":  {},
	"%ifnarch": {},
	"%ifos":    {},
	"%ifnos":   {},
}

// index rebuilds the tag table from the preamble and %package sections.
func (s *Spec) index() {
	s.tags = nil
	for si, sec := range s.sections {
		if !isTagSection(sec.name) {
			continue
		}
		depth := 0
		for li, line := range sec.lines {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "%") {
				directive := strings.Fields(trimmed)[0]
				if _, ok := conditionalOpen[directive]; ok {
					depth++
				} else if directive == "%endif" && depth > 0 {
					depth--
				}
				continue
			}
			m := tagLineRE.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			s.tags = append(s.tags, types.Tag{
				Name:    m[1],
				Index:   tagIndex(m[1]),
				Line:    li,
				Section: si,
				Value:   m[4],
				Valid:   depth == 0,
			})
		}
	}
}

func isTagSection(name string) bool {
	return name == PreambleSection || strings.HasPrefix(name, PreambleSection+" ")
}

func tagIndex(name string) int {
	m := indexedTagRE.FindStringSubmatch(name)
	if m == nil || m[1] == "" {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ValidateFilter reports whether the filter's name pattern is a valid glob.
func ValidateFilter(filter types.TagFilter) error {
	if filter.Name != "" && !doublestar.ValidatePattern(filter.Name) {
		return errors.Newf(errors.ErrInvalidTagFilter, "invalid tag pattern %q", filter.Name)
	}
	return nil
}

// Tags returns the tags matching filter in document order. The sequence
// reads the live tag table each time it is ranged over; invalid patterns
// match nothing.
func (s *Spec) Tags(filter types.TagFilter) iter.Seq[types.Tag] {
	return func(yield func(types.Tag) bool) {
		for _, tag := range s.tags {
			if !matches(filter, tag) {
				continue
			}
			if !yield(tag) {
				return
			}
		}
	}
}

func matches(filter types.TagFilter, tag types.Tag) bool {
	if filter.Valid != nil && *filter.Valid != tag.Valid {
		return false
	}
	if filter.Name == "" {
		return true
	}
	ok, err := doublestar.Match(filter.Name, tag.Name)
	return err == nil && ok
}

// SetTag replaces the value of the tag called name, compared
// case-insensitively. A valid occurrence is preferred over one inside a
// conditional block.
func (s *Spec) SetTag(name, value string) error {
	var target *types.Tag
	for i := range s.tags {
		tag := &s.tags[i]
		if !strings.EqualFold(tag.Name, name) {
			continue
		}
		if tag.Valid {
			target = tag
			break
		}
		if target == nil {
			target = tag
		}
	}
	if target == nil {
		return errors.Newf(errors.ErrTagNotFound, "tag %s not found", name)
	}
	s.setLineValue(target.Section, target.Line, value)
	return nil
}

// SetRawTagValue replaces the value of the first tag called name in the
// given section index.
func (s *Spec) SetRawTagValue(name, value string, section int) error {
	for _, tag := range s.tags {
		if tag.Section == section && strings.EqualFold(tag.Name, name) {
			s.setLineValue(tag.Section, tag.Line, value)
			return nil
		}
	}
	return errors.Newf(errors.ErrTagNotFound, "tag %s not found in section %d", name, section).
		WithDetail("section", section)
}

func (s *Spec) setLineValue(section, line int, value string) {
	old := s.sections[section].lines[line]
	m := tagLineRE.FindStringSubmatch(old)
	s.sections[section].lines[line] = m[1] + m[2] + m[3] + value
	s.index()
}

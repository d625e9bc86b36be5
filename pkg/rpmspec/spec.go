package rpmspec

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/logging"
	"github.com/arthur-debert/specedit/pkg/types"
)

// PreambleSection is the name of the section holding the main preamble.
const PreambleSection = "%package"

// sectionMacros are the macros that open a new section when they start a line.
var sectionMacros = map[string]struct{}{
	"%package":                {},
	"%description":            {},
	"%prep":                   {},
	"%generate_buildrequires": {},
	"%conf":                   {},
	"%build":                  {},
	"%install":                {},
	"%check":                  {},
	"%clean":                  {},
	"%files":                  {},
	"%changelog":              {},
	"%pre":                    {},
	"%post":                   {},
	"%preun":                  {},
	"%postun":                 {},
	"%pretrans":               {},
	"%posttrans":              {},
	"%preuntrans":             {},
	"%postuntrans":            {},
	"%triggerprein":           {},
	"%triggerin":              {},
	"%triggerun":              {},
	"%triggerpostun":          {},
	"%filetriggerin":          {},
	"%filetriggerun":          {},
	"%filetriggerpostun":      {},
	"%transfiletriggerin":     {},
	"%transfiletriggerun":     {},
	"%transfiletriggerpostun": {},
	"%verifyscript":           {},
}

type section struct {
	name   string // trimmed header line, e.g. "%files -n foo"
	header string // header line as read, written back on save
	lines  []string
}

// Spec is an in-memory RPM spec document.
type Spec struct {
	fs     types.FS
	path   string
	logger zerolog.Logger

	sections        []section
	trailingNewline bool
	tags            []types.Tag
}

// Parse builds a Spec from text. The result has no backing file; Save
// fails until the spec is opened with Open.
func Parse(text string) *Spec {
	s := &Spec{logger: logging.GetLogger("rpmspec")}
	s.load(text)
	return s
}

func (s *Spec) load(text string) {
	s.trailingNewline = strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")

	var lines []string
	if text != "" || s.trailingNewline {
		lines = strings.Split(text, "\n")
	}

	s.sections = []section{{name: PreambleSection}}
	for _, line := range lines {
		if isSectionHeader(line) {
			s.sections = append(s.sections, section{name: strings.TrimSpace(line), header: line})
			continue
		}
		cur := &s.sections[len(s.sections)-1]
		cur.lines = append(cur.lines, line)
	}
	s.index()
}

func isSectionHeader(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	_, ok := sectionMacros[fields[0]]
	return ok
}

// String renders the document exactly as it would be saved.
func (s *Spec) String() string {
	var lines []string
	for i, sec := range s.sections {
		if i > 0 {
			lines = append(lines, sec.header)
		}
		lines = append(lines, sec.lines...)
	}
	out := strings.Join(lines, "\n")
	if s.trailingNewline {
		out += "\n"
	}
	return out
}

// SectionNames lists section names in document order.
func (s *Spec) SectionNames() []string {
	names := make([]string, len(s.sections))
	for i, sec := range s.sections {
		names[i] = sec.name
	}
	return names
}

func (s *Spec) sectionIndex(name string) int {
	for i, sec := range s.sections {
		if sec.name == name {
			return i
		}
	}
	return -1
}

// Section returns a copy of the lines of the first section called name.
func (s *Spec) Section(name string) ([]string, bool) {
	i := s.sectionIndex(name)
	if i < 0 {
		return nil, false
	}
	return append([]string(nil), s.sections[i].lines...), true
}

// ReplaceSection swaps the body of the first section called name.
func (s *Spec) ReplaceSection(name string, lines []string) error {
	i := s.sectionIndex(name)
	if i < 0 {
		return errors.Newf(errors.ErrSectionNotFound, "section %s not found", name)
	}
	s.sections[i].lines = append([]string(nil), lines...)
	s.index()
	return nil
}

// InsertLines splices lines into section name before line at.
// at may equal the section length to append.
func (s *Spec) InsertLines(name string, at int, lines []string) error {
	i := s.sectionIndex(name)
	if i < 0 {
		return errors.Newf(errors.ErrSectionNotFound, "section %s not found", name)
	}
	body := s.sections[i].lines
	if at < 0 || at > len(body) {
		return errors.Newf(errors.ErrLineOutOfRange, "line %d outside section %s", at, name).
			WithDetail("length", len(body))
	}

	updated := make([]string, 0, len(body)+len(lines))
	updated = append(updated, body[:at]...)
	updated = append(updated, lines...)
	updated = append(updated, body[at:]...)
	s.sections[i].lines = updated
	s.index()
	return nil
}

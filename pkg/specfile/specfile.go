package specfile

import (
	"iter"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/specedit/pkg/logging"
	"github.com/arthur-debert/specedit/pkg/rpmspec"
	"github.com/arthur-debert/specedit/pkg/types"
)

const (
	preamble      = rpmspec.PreambleSection
	changelogName = "%changelog"
	prepName      = "%prep"
	distMacro     = "%{?dist}"
)

// Options tune how a Specfile writes values.
type Options struct {
	// Dist is the expanded value of %{dist}, e.g. ".fc40". It is stripped
	// from Release values when computing release numbers.
	Dist string
	// ChangelogAuthor and ChangelogEmail sign new changelog entries.
	ChangelogAuthor string
	ChangelogEmail  string
	// Now is the clock used for changelog dates; time.Now when nil.
	Now func() time.Time
}

// Specfile edits one spec document.
type Specfile struct {
	doc    Document
	opts   Options
	logger zerolog.Logger
}

// New wraps an already loaded document.
func New(doc Document, opts Options) *Specfile {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Specfile{
		doc:    doc,
		opts:   opts,
		logger: logging.GetLogger("specfile"),
	}
}

// Open loads the spec at path through fsys.
func Open(fsys types.FS, path string, opts Options) (*Specfile, error) {
	doc, err := rpmspec.Open(fsys, path)
	if err != nil {
		return nil, err
	}
	return New(doc, opts), nil
}

// Document exposes the wrapped document.
func (s *Specfile) Document() Document {
	return s.doc
}

// Tags yields the tags of the spec matching filter.
func (s *Specfile) Tags(filter types.TagFilter) iter.Seq[types.Tag] {
	return s.doc.Tags(filter)
}

// Changelog returns the lines of the %changelog section.
func (s *Specfile) Changelog() ([]string, bool) {
	return s.doc.Section(changelogName)
}

// firstTag returns the first valid tag called name, falling back to an
// occurrence inside a conditional block.
func (s *Specfile) firstTag(name string) (types.Tag, bool) {
	var fallback types.Tag
	found := false
	for tag := range s.doc.Tags(types.TagFilter{Name: name}) {
		if tag.Valid {
			return tag, true
		}
		if !found {
			fallback, found = tag, true
		}
	}
	return fallback, found
}

// Version returns the Version tag value.
func (s *Specfile) Version() string {
	tag, _ := s.firstTag("Version")
	return tag.Value
}

// Release returns the raw Release tag value.
func (s *Specfile) Release() string {
	tag, _ := s.firstTag("Release")
	return tag.Value
}

func (s *Specfile) releaseWithoutDist() string {
	release := s.Release()
	release = strings.ReplaceAll(release, distMacro, "")
	release = strings.ReplaceAll(release, "%{dist}", "")
	if s.opts.Dist != "" {
		release = strings.ReplaceAll(release, s.opts.Dist, "")
	}
	return release
}

var releaseNumberRE = regexp.MustCompile(`([0-9.]*[0-9]+).*`)

// ReleaseNumber returns the leading numeric part of Release, without dist.
// "3.fc30" with Dist ".fc30" gives "3"; "0.1.rc1%{?dist}" gives "0.1".
func (s *Specfile) ReleaseNumber() string {
	return releaseNumberRE.ReplaceAllString(s.releaseWithoutDist(), "${1}")
}

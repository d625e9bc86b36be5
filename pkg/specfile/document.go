package specfile

import (
	"iter"

	"github.com/arthur-debert/specedit/pkg/types"
)

// Document is the capability a spec document must provide to be edited.
type Document interface {
	// Tags yields the tags matching filter in document order.
	Tags(filter types.TagFilter) iter.Seq[types.Tag]
	// Section returns a copy of the lines of the named section.
	Section(name string) ([]string, bool)
	ReplaceSection(name string, lines []string) error
	InsertLines(section string, at int, lines []string) error
	// SetTag replaces the value of the named tag.
	SetTag(name, value string) error
	// SetRawTagValue replaces the value of the named tag in one section.
	SetRawTagValue(name, value string, section int) error
	Save() error
	Reload() error
}

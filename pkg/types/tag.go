package types

import "fmt"

// Tag is a `Name: value` declaration found in a spec document.
type Tag struct {
	// Name as written in the spec, e.g. "Patch0007" or "Source".
	Name string `json:"name"`
	// Index is the numeric suffix of Source/Patch tags; 0 when absent.
	Index int `json:"index"`
	// Line is the zero-based line number within Section.
	Line int `json:"line"`
	// Section is the index of the section holding the tag; 0 is the preamble.
	Section int `json:"section"`
	// Value is the tag value with surrounding whitespace removed.
	Value string `json:"value"`
	// Valid is false when the tag sits inside a conditional block.
	Valid bool `json:"valid"`
}

func (t Tag) String() string {
	return fmt.Sprintf("%s: %s", t.Name, t.Value)
}

// TagFilter selects tags from a spec document.
type TagFilter struct {
	// Name is a glob matched against the tag name, e.g. "Patch*".
	// An empty Name matches every tag.
	Name string
	// Valid restricts the query to valid (true) or conditional (false)
	// tags. Nil matches both.
	Valid *bool
}

// Bool returns a pointer to b, for use in TagFilter.Valid.
func Bool(b bool) *bool {
	return &b
}

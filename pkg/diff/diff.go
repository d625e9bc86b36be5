// Package diff renders unified diffs of spec edits for --dry-run output.
package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Unified returns a unified diff from before to after with three lines of
// context, or "" when the texts are equal.
func Unified(name, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}

// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/specedit/pkg/errors"
	"github.com/arthur-debert/specedit/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.EditResult:
		return r.renderEdit(v)
	case *types.TagsResult:
		for _, tag := range v.Tags {
			line := tag.String()
			if !tag.Valid {
				line += " (conditional)"
			}
			if err := r.println(line); err != nil {
				return err
			}
		}
		return nil
	case *types.ReleaseResult:
		return r.println(v.Number)
	case *types.ChangelogResult:
		return r.println(strings.Join(v.Lines, "\n"))
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderEdit(v *types.EditResult) error {
	for _, p := range v.Patches {
		if err := r.println(fmt.Sprintf("  %-8s %s", p.Status, p.Name)); err != nil {
			return err
		}
	}

	if v.DryRun && v.Diff != "" {
		if _, err := fmt.Fprint(r.output, v.Diff); err != nil {
			return err
		}
	}
	return r.println(Summary(v))
}

// Summary is the one-line outcome of an edit
func Summary(v *types.EditResult) string {
	switch {
	case !v.Changed:
		return fmt.Sprintf("%s: no changes", v.Spec)
	case v.DryRun:
		return fmt.Sprintf("%s: DRY RUN, changes were not written", v.Spec)
	default:
		return fmt.Sprintf("%s: updated", v.Spec)
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.println(fmt.Sprintf("Error: %v", Describe(err)))
}

// Describe drops the error code prefix of structured errors
func Describe(err error) string {
	var specErr *errors.SpecError
	if !errors.As(err, &specErr) {
		return err.Error()
	}
	if specErr.Wrapped != nil {
		return fmt.Sprintf("%s: %v", specErr.Message, specErr.Wrapped)
	}
	return specErr.Message
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

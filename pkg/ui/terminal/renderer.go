// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/specedit/pkg/style"
	"github.com/arthur-debert/specedit/pkg/types"
	"github.com/arthur-debert/specedit/pkg/ui/text"
)

// Renderer provides rich terminal output using lipgloss, pterm and glamour
type Renderer struct {
	output io.Writer
	// Width wraps rendered markdown; 0 keeps glamour's default
	Width int
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.EditResult:
		return r.renderEdit(v)
	case *types.TagsResult:
		if len(v.Tags) == 0 {
			return r.println(style.MutedStyle.Render("No matching tags"))
		}
		for _, tag := range v.Tags {
			if err := r.println(style.RenderTag(tag)); err != nil {
				return err
			}
		}
		return nil
	case *types.ReleaseResult:
		return r.println(fmt.Sprintf("%s %s",
			style.Bold(v.Number),
			style.MutedStyle.Render(fmt.Sprintf("(Version %s, Release %s)", v.Version, v.Release))))
	case *types.ChangelogResult:
		return r.renderChangelog(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderEdit(v *types.EditResult) error {
	if len(v.Patches) > 0 {
		if err := r.println(style.TitleStyle.Render("Patches:")); err != nil {
			return err
		}
		for _, p := range v.Patches {
			if err := r.println(style.RenderPatchOutcome(p, v.DryRun)); err != nil {
				return err
			}
		}
	}

	if v.DryRun && v.Diff != "" {
		if err := r.println(style.RenderDiff(v.Diff)); err != nil {
			return err
		}
	}

	indicator := style.SuccessIndicator
	switch {
	case !v.Changed:
		indicator = style.PendingIndicator
	case v.DryRun:
		indicator = style.WarningIndicator
	}
	return r.println(indicator + " " + text.Summary(v))
}

func (r *Renderer) renderChangelog(v *types.ChangelogResult) error {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	md := ChangelogMarkdown(v.Lines)
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return r.println(md)
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return r.println(md)
	}
	_, err = fmt.Fprint(r.output, rendered)
	return err
}

// ChangelogMarkdown turns %changelog lines into markdown: entry headers
// become level three headings and item lines stay list items.
func ChangelogMarkdown(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "* "):
			b.WriteString("### " + strings.TrimPrefix(line, "* ") + "\n\n")
		case strings.TrimSpace(line) == "":
			b.WriteString("\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	return r.println(style.ErrorIndicator + " " + style.ErrorStyle.Render("Error: "+text.Describe(err)))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(style.InfoIndicator + " " + msg)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

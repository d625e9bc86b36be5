package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/specedit/pkg/types"
)

// Status of one item in a command report
type Status string

const (
	StatusAdded     Status = "added"     // Written to the spec
	StatusPresent   Status = "present"   // Already declared, left alone
	StatusPending   Status = "pending"   // Would be written without --dry-run
	StatusUnchanged Status = "unchanged" // Command ran, spec text identical
	StatusError     Status = "error"
)

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusAdded:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusPending:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case StatusPresent:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// PatchStatus maps an add-patches outcome to a display status.
// Patches added during a dry run are shown as pending.
func PatchStatus(outcome types.PatchOutcome, dryRun bool) Status {
	switch outcome.Status {
	case types.PatchStatusAdded:
		if dryRun {
			return StatusPending
		}
		return StatusAdded
	case types.PatchStatusPresent:
		return StatusPresent
	default:
		return StatusError
	}
}

// RenderPatchOutcome renders a single add-patches line
func RenderPatchOutcome(outcome types.PatchOutcome, dryRun bool) string {
	status := PatchStatus(outcome, dryRun)
	label := StatusStyle(status).Sprint(fmt.Sprintf("%-9s", status))

	var msg string
	switch status {
	case StatusAdded:
		msg = "declared in the spec"
	case StatusPending:
		msg = "will be declared in the spec"
	case StatusPresent:
		msg = "already declared"
	default:
		msg = "unknown outcome " + outcome.Status
	}
	return fmt.Sprintf("    %s : %s : %s", label, outcome.Name, msg)
}

// RenderTag renders a tag line, marking conditional declarations
func RenderTag(tag types.Tag) string {
	name := TagNameStyle.Render(tag.Name)
	if !tag.Valid {
		return fmt.Sprintf("%s: %s %s", name, tag.Value, ConditionalTagStyle.Render("(conditional)"))
	}
	return fmt.Sprintf("%s: %s", name, tag.Value)
}

// RenderDiff colors a unified diff line by line
func RenderDiff(diff string) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = DiffFileStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = DiffHunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = DiffAddStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = DiffRemoveStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

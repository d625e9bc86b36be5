// Package style holds the lipgloss palette and the pterm status labels used
// by the terminal renderer: tag listings, add-patches reports and colored
// unified diffs.
package style

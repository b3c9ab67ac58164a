package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/load-velocity-cli/internal/application"
	"github.com/charmbracelet/lipgloss"
)

// Render produces the styled terminal summary for one processing run.
func Render(s application.Summary) string {
	return renderView(s, newStyles())
}

func renderView(summary application.Summary, s styles) string {
	lines := []string{
		s.title.Render("Load Velocity Run"),
		s.header.Render(fmt.Sprintf("attempts: %d  customers: %d", summary.Attempts, len(summary.Customers))),
	}

	if summary.Attempts == 0 {
		lines = append(lines, s.muted.Render("No attempts processed."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines,
		outcomeLine("accepted", summary.Accepted, summary.Decisions(), s.accepted, s),
		outcomeLine("rejected", summary.Rejected, summary.Decisions(), s.rejected, s),
	)

	if summary.Duplicates > 0 {
		lines = append(lines, s.muted.Render(fmt.Sprintf("duplicates suppressed: %d", summary.Duplicates)))
	}
	if summary.Malformed > 0 {
		lines = append(lines, s.warning.Render(fmt.Sprintf("malformed lines skipped: %d", summary.Malformed)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func outcomeLine(label string, count, total int, countStyle lipgloss.Style, s styles) string {
	fraction := 0.0
	if total > 0 {
		fraction = float64(count) / float64(total)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.label.Render(fmt.Sprintf("%-9s", label+":")),
		countStyle.Render(fmt.Sprintf("%6d", count)),
		" ",
		renderBar(fraction, 24, s),
		" ",
		s.label.Render(fmt.Sprintf("%3.0f%%", fraction*100)),
	)
}

func renderBar(fraction float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	filled := int(math.Round(float64(width) * fraction))
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

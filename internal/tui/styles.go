package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mikanfactory/gityard/internal/model"
)

var (
	colorFg     = lipgloss.Color("#cdd6f4")
	colorFgDim  = lipgloss.Color("#6c7086")
	colorBlue   = lipgloss.Color("#89b4fa")
	colorCyan   = lipgloss.Color("#89dceb")
	colorGreen  = lipgloss.Color("#a6e3a1")
	colorRed    = lipgloss.Color("#f38ba8")
	colorYellow = lipgloss.Color("#f9e2af")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorFgDim)

	rowStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	rowSelectedStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	rowCurrentStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	menuSelectedStyle = lipgloss.NewStyle().
				Foreground(colorCyan)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorFgDim).
			PaddingTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	stagedStyle    = lipgloss.NewStyle().Foreground(colorBlue)
	unstagedStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	untrackedStyle = lipgloss.NewStyle().Foreground(colorYellow)
	plusStyle      = lipgloss.NewStyle().Foreground(colorGreen)
	minusStyle     = lipgloss.NewStyle().Foreground(colorRed)
)

// padCell fits value into width columns, padding with spaces or
// truncating with "...".
func padCell(value string, width int) string {
	runes := []rune(value)
	switch {
	case len(runes) == width:
		return value
	case len(runes) < width:
		return value + strings.Repeat(" ", width-len(runes))
	case width <= 3:
		return string(runes[:max(width, 0)])
	}
	return string(runes[:width-3]) + "..."
}

// FormatStatusCell renders the Changes column. Counts are colored when they fit.
func FormatStatusCell(s *model.StatusCounts, width int) string {
	if s == nil {
		return padCell(model.Placeholder, width)
	}
	staged := fmt.Sprintf("staged:%d", s.Staged)
	unstaged := fmt.Sprintf("unstaged:%d", s.Unstaged)
	untracked := fmt.Sprintf("untracked:%d", s.Untracked)
	full := staged + " " + unstaged + " " + untracked
	if len(full) > width {
		return padCell(full, width)
	}
	return stagedStyle.Render(staged) + " " +
		unstagedStyle.Render(unstaged) + " " +
		untrackedStyle.Render(untracked) +
		strings.Repeat(" ", width-len(full))
}

// FormatDiffCell renders the Diff column as a green "+A" and a red "-D".
func FormatDiffCell(d *model.DiffCounts, width int) string {
	if d == nil {
		return padCell(model.Placeholder, width)
	}
	plus := fmt.Sprintf("+%d", d.Added)
	minus := fmt.Sprintf("-%d", d.Deleted)
	full := plus + " " + minus
	if len(full) > width {
		return padCell(full, width)
	}
	return plusStyle.Render(plus) + " " + minusStyle.Render(minus) +
		strings.Repeat(" ", width-len(full))
}

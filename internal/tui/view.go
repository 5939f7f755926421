package tui

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"

	"github.com/mikanfactory/gityard/internal/model"
	"github.com/mikanfactory/gityard/internal/rows"
)

const (
	headerName   = "Worktree"
	headerBranch = "Branch"
	headerAge    = "Age"
	headerStatus = "Changes"
	headerDiff   = "Diff"
)

// columns holds the width of each table column.
type columns struct {
	name, branch, age, status, diff int
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// layoutColumns sizes each column to its widest cell within fixed bounds.
func layoutColumns(items []model.Row) columns {
	c := columns{
		name:   len(headerName),
		branch: len(headerBranch),
		age:    len(headerAge),
		status: len(headerStatus),
		diff:   len(headerDiff),
	}
	for _, r := range items {
		c.name = max(c.name, len([]rune(r.Name)))
		c.branch = max(c.branch, len([]rune(r.Branch)))
		c.age = max(c.age, len(r.Age))
		if !r.IsCreate {
			c.status = max(c.status, len(rows.StatusText(r.Status)))
			c.diff = max(c.diff, len(rows.DiffText(r.Diff)))
		}
	}
	return columns{
		name:   clamp(c.name, 10, 28),
		branch: clamp(c.branch, 8, 20),
		age:    clamp(c.age, 5, 8),
		status: clamp(c.status, 7, 42),
		diff:   clamp(c.diff, 6, 14),
	}
}

func (m Model) View() string {
	switch m.state {
	case StateDone, StateError:
		// The caller prints the outcome once the program has exited.
		return ""
	case StateLoading:
		return m.spinner.View() + " Loading worktrees..."
	case StateSwitching:
		return m.spinner.View() + " Switching worktree..."
	case StateCreating:
		return m.spinner.View() + " Creating worktree..."
	case StateMerging:
		return m.spinner.View() + fmt.Sprintf(" Merging into %s...", m.base())
	case StateDeleting:
		return m.spinner.View() + " Deleting worktree..."
	case StatePath:
		return titleStyle.Render("Enter worktree path (e.g., ./my-feature)") + "\n" +
			m.pathInput.View() + "\n" +
			helpStyle.Render("tab: complete  enter: next  esc: back")
	case StateBranch:
		return titleStyle.Render("Enter branch name (optional, defaults to path)") + "\n" +
			m.branchInput.View() + "\n" +
			helpStyle.Render("enter: create  esc: back")
	case StateMerge:
		return m.viewMenu("Merge target:")
	case StateDelete:
		return m.viewMenu("Delete branch:")
	}
	return zone.Scan(m.viewTable())
}

func (m Model) base() string {
	if m.baseBranch == "" {
		return "master"
	}
	return m.baseBranch
}

func (m Model) viewTable() string {
	cols := layoutColumns(m.items)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Available worktrees:"))
	b.WriteString("\n")

	header := "  " + strings.Join([]string{
		padCell(headerName, cols.name),
		padCell(headerBranch, cols.branch),
		padCell(headerAge, cols.age),
		padCell(headerStatus, cols.status),
		padCell(headerDiff, cols.diff),
	}, "  ")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, r := range m.items {
		b.WriteString(zone.Mark(ZoneID(i), renderRow(r, cols, i == m.cursor)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"Use arrow keys and press Enter. Press m to merge into %s, d to delete a branch. q to quit.", m.base())))
	return b.String()
}

func renderRow(r model.Row, cols columns, selected bool) string {
	prefix := "  "
	style := rowStyle
	switch {
	case selected:
		prefix = "➤ "
		style = rowSelectedStyle
	case r.IsCurrent:
		style = rowCurrentStyle
	}

	left := prefix + strings.Join([]string{
		padCell(r.Name, cols.name),
		padCell(r.Branch, cols.branch),
		padCell(r.Age, cols.age),
	}, "  ") + "  "

	if r.IsCreate {
		return style.Render(left) + padCell("", cols.status) + "  " + padCell("", cols.diff)
	}
	return style.Render(left) + FormatStatusCell(r.Status, cols.status) + "  " + FormatDiffCell(r.Diff, cols.diff)
}

func (m Model) viewMenu(title string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for i, item := range m.menu {
		if i == m.menuCursor {
			b.WriteString(menuSelectedStyle.Render("➤ " + item.label))
		} else {
			b.WriteString("  " + item.label)
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Press Enter to confirm, Esc to cancel."))
	return b.String()
}

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/mikanfactory/gityard/internal/model"
	"github.com/mikanfactory/gityard/internal/pathcomplete"
)

func TestPadCell(t *testing.T) {
	tests := []struct {
		value string
		width int
		want  string
	}{
		{value: "abc", width: 5, want: "abc  "},
		{value: "abcde", width: 5, want: "abcde"},
		{value: "abcdefgh", width: 6, want: "abc..."},
		{value: "abcdef", width: 3, want: "abc"},
		{value: "日本語テキスト", width: 5, want: "日本..."},
		{value: "", width: 2, want: "  "},
	}

	for _, tt := range tests {
		if got := padCell(tt.value, tt.width); got != tt.want {
			t.Errorf("padCell(%q, %d) = %q, want %q", tt.value, tt.width, got, tt.want)
		}
	}
}

func TestLayoutColumns(t *testing.T) {
	items := []model.Row{
		{Name: strings.Repeat("n", 40), Branch: "b", Age: "3d"},
		{Name: "x", Branch: strings.Repeat("b", 15), Age: "11mo",
			Status: &model.StatusCounts{Staged: 1}, Diff: &model.DiffCounts{Added: 1}},
	}

	cols := layoutColumns(items)
	want := columns{name: 28, branch: 15, age: 5, status: 31, diff: 6}
	if cols != want {
		t.Errorf("layoutColumns = %+v, want %+v", cols, want)
	}
}

func TestFormatCellsFallBackWhenTooWide(t *testing.T) {
	s := &model.StatusCounts{Staged: 1, Unstaged: 2, Untracked: 3}
	if got := ansi.Strip(FormatStatusCell(s, 10)); got != "staged:..." {
		t.Errorf("narrow status = %q", got)
	}
	if got := ansi.Strip(FormatStatusCell(s, 32)); got != "staged:1 unstaged:2 untracked:3 " {
		t.Errorf("status = %q", got)
	}
	if got := ansi.Strip(FormatDiffCell(&model.DiffCounts{Added: 12, Deleted: 3}, 8)); got != "+12 -3  " {
		t.Errorf("diff = %q", got)
	}
	if got := FormatDiffCell(nil, 6); got != "-     " {
		t.Errorf("nil diff = %q", got)
	}
}

func TestViewSelect(t *testing.T) {
	m := loaded(t, &fakeBackend{snapshot: testSnapshot()})
	m, _ = update(t, m, keyDown)

	out := ansi.Strip(m.View())
	for _, want := range []string{
		"Worktree", "Branch", "Age", "Changes", "Diff",
		"+ Create a new worktree",
		"➤ repo",
		"wt/feature-a",
		"staged:1 unstaged:2 untracked:3",
		"+10 -4",
		"press m to merge into main",
	} {
		if !strings.Contains(strings.ToLower(out), strings.ToLower(want)) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "➤") != 1 {
		t.Errorf("want exactly one selection marker:\n%s", out)
	}
}

func TestViewMenus(t *testing.T) {
	m := loaded(t, &fakeBackend{snapshot: testSnapshot()})
	m, _ = update(t, m, keyUp)

	merge, _ := update(t, m, keyRunes("m"))
	out := ansi.Strip(merge.View())
	for _, want := range []string{"Merge target:", "➤ Merge into main (squash)", "Merge into main (no-ff)", "Back", "Esc to cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("merge menu missing %q:\n%s", want, out)
		}
	}

	del, _ := update(t, m, keyRunes("d"))
	out = ansi.Strip(del.View())
	for _, want := range []string{"Delete branch:", "➤ Remove worktree only", "delete branch (safe)", "delete branch (force)"} {
		if !strings.Contains(out, want) {
			t.Errorf("delete menu missing %q:\n%s", want, out)
		}
	}
}

func TestViewInputsAndBusy(t *testing.T) {
	b := &fakeBackend{snapshot: testSnapshot()}
	m := NewModel(b, pathcomplete.NewCompleter(t.TempDir()))
	if out := m.View(); !strings.Contains(out, "Loading worktrees...") {
		t.Errorf("loading view = %q", out)
	}

	m = loaded(t, b)
	path, _ := update(t, m, keyEnter)
	if out := path.View(); !strings.Contains(out, "Enter worktree path (e.g., ./my-feature)") {
		t.Errorf("path view = %q", out)
	}

	path, _ = update(t, path, keyRunes("feat"))
	branch, _ := update(t, path, keyEnter)
	if out := branch.View(); !strings.Contains(out, "Enter branch name (optional, defaults to path)") {
		t.Errorf("branch view = %q", out)
	}
}

func TestViewTerminalStatesAreEmpty(t *testing.T) {
	m := loaded(t, &fakeBackend{snapshot: testSnapshot()})
	done, _ := update(t, m, keyRunes("q"))
	if done.View() != "" {
		t.Errorf("done view = %q, want empty", done.View())
	}
}

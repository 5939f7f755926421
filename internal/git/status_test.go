package git

import (
	"testing"

	"github.com/mikanfactory/gityard/internal/model"
)

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   model.StatusCounts
	}{
		{name: "clean", output: "", want: model.StatusCounts{}},
		{name: "untracked only", output: "?? new.go\n?? other.go\n", want: model.StatusCounts{Untracked: 2}},
		{name: "staged add", output: "A  added.go\n", want: model.StatusCounts{Staged: 1}},
		{name: "unstaged modification", output: " M main.go\n", want: model.StatusCounts{Unstaged: 1}},
		{name: "staged and unstaged same file", output: "MM main.go\n", want: model.StatusCounts{Staged: 1, Unstaged: 1}},
		{
			name:   "mixed",
			output: " M a.go\nM  b.go\nD  c.go\n D d.go\nR  e.go -> f.go\n?? g.go\n",
			want:   model.StatusCounts{Staged: 3, Unstaged: 2, Untracked: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &FakeCommandRunner{
				Results: map[string]Result{
					"/repo:[status --porcelain]": {Stdout: tt.output},
				},
			}

			got, err := GetStatus(runner, "/repo")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetStatus = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGetStatus_Error(t *testing.T) {
	runner := &FakeCommandRunner{
		Results: map[string]Result{
			"/repo:[status --porcelain]": Fail("fatal: not a git repository"),
		},
	}

	if _, err := GetStatus(runner, "/repo"); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestStatusCounts_Clean(t *testing.T) {
	if !(model.StatusCounts{}).Clean() {
		t.Error("zero counts should be clean")
	}
	if (model.StatusCounts{Untracked: 1}).Clean() {
		t.Error("untracked files should not be clean")
	}
}

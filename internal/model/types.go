package model

// Worktree is one entry of `git worktree list --porcelain`.
// Branch is never empty: detached and bare records carry the
// "detached" and "bare" sentinels.
type Worktree struct {
	Path       string
	Branch     string
	Commit     string
	IsDetached bool
	IsBare     bool
}

// StatusCounts holds the per-worktree file counts from `git status --porcelain`.
type StatusCounts struct {
	Staged    int
	Unstaged  int
	Untracked int
}

// Clean reports whether there are no staged, unstaged or untracked changes.
func (s StatusCounts) Clean() bool {
	return s.Staged == 0 && s.Unstaged == 0 && s.Untracked == 0
}

// DiffCounts holds aggregated line counts against the base branch.
type DiffCounts struct {
	Added   int
	Deleted int
}

// Placeholder is shown for a display field that could not be derived.
const Placeholder = "-"

// Row is a single line in the interactive worktree list.
// Status and Diff are nil when their derivation failed.
type Row struct {
	Path      string
	Name      string
	Branch    string
	Age       string
	Status    *StatusCounts
	Diff      *DiffCounts
	IsCurrent bool
	IsCreate  bool
}

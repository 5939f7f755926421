package git

import (
	"strings"

	"github.com/mikanfactory/gityard/internal/model"
)

const (
	BranchDetached = "detached"
	BranchBare     = "bare"
	CommitUnknown  = "unknown"
)

// ListWorktrees runs `git worktree list --porcelain` and parses the output.
func ListWorktrees(runner CommandRunner, repoPath string) ([]model.Worktree, error) {
	res := runner.Run(repoPath, "worktree", "list", "--porcelain")
	if !res.OK() {
		return nil, classify(repoPath, res)
	}
	return ParseWorktreePorcelain(res.Stdout), nil
}

// ParseWorktreePorcelain parses porcelain output into records in listing order.
// Blocks may be terminated either by a blank line or by the next
// "worktree" line; both yield the same records.
func ParseWorktreePorcelain(output string) []model.Worktree {
	var (
		worktrees []model.Worktree
		current   model.Worktree
	)

	flush := func() {
		if current.Path != "" {
			worktrees = append(worktrees, current)
		}
		current = model.Worktree{}
	}

	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = model.Worktree{
				Path:   strings.TrimSpace(strings.TrimPrefix(line, "worktree ")),
				Branch: BranchDetached,
				Commit: CommitUnknown,
			}
		case strings.HasPrefix(line, "HEAD "):
			current.Commit = strings.TrimSpace(strings.TrimPrefix(line, "HEAD "))
		case strings.HasPrefix(line, "branch "):
			current.Branch = shortRef(strings.TrimSpace(strings.TrimPrefix(line, "branch ")))
			current.IsDetached = false
		case line == "detached":
			current.IsDetached = true
			current.Branch = BranchDetached
		case line == "bare":
			current.IsBare = true
			current.Branch = BranchBare
		case line == "" && current.Path != "":
			flush()
		}
	}
	flush()

	return worktrees
}

func shortRef(ref string) string {
	for _, prefix := range []string{"refs/heads/", "refs/remotes/"} {
		if strings.HasPrefix(ref, prefix) {
			return strings.TrimPrefix(ref, prefix)
		}
	}
	return ref
}

// AddWorktree creates a new worktree on a new branch.
func AddWorktree(runner CommandRunner, repoPath, newPath, branch string) Result {
	return runner.Run(repoPath, "worktree", "add", "-b", branch, newPath)
}

// AddWorktreeFromBranch creates a new worktree from an existing local branch.
func AddWorktreeFromBranch(runner CommandRunner, repoPath, newPath, branch string) Result {
	return runner.Run(repoPath, "worktree", "add", newPath, branch)
}

// AddWorktreeTracking creates a local branch tracking origin/<branch> in a new worktree.
func AddWorktreeTracking(runner CommandRunner, repoPath, newPath, branch string) Result {
	return runner.Run(repoPath, "worktree", "add", "--track", "-b", branch, newPath, "origin/"+branch)
}

// RemoveWorktree removes an existing worktree.
func RemoveWorktree(runner CommandRunner, repoPath, worktreePath string, force bool) Result {
	args := []string{"worktree", "remove", worktreePath}
	if force {
		args = append(args, "--force")
	}
	return runner.Run(repoPath, args...)
}

package worktree

import (
	"fmt"
	"strings"

	"github.com/mikanfactory/gityard/internal/git"
)

// MergeOptions selects the merge strategy. Exactly one of Squash and NoFF must be set.
type MergeOptions struct {
	Squash     bool
	NoFF       bool
	BaseBranch string
}

// MergeResult names the branches involved in a completed merge.
type MergeResult struct {
	BaseBranch   string
	MergedBranch string
}

func (o MergeOptions) strategyFlag() (string, error) {
	switch {
	case o.Squash && o.NoFF:
		return "", &UsageError{Message: "Specify only one merge strategy: --squash or --no-ff"}
	case o.Squash:
		return "--squash", nil
	case o.NoFF:
		return "--no-ff", nil
	}
	return "", &UsageError{Message: "Specify a merge strategy: --squash or --no-ff"}
}

// Merge merges the branch of the worktree matching nameOrPath into the base
// branch, checked out in the repository root.
func (s *Service) Merge(nameOrPath string, opts MergeOptions) (MergeResult, error) {
	flag, err := opts.strategyFlag()
	if err != nil {
		return MergeResult{}, err
	}
	if strings.TrimSpace(nameOrPath) == "" {
		return MergeResult{}, &UsageError{Message: "Usage: gityard merge <worktree> [--squash|--no-ff]"}
	}

	st, err := s.load()
	if err != nil {
		return MergeResult{}, err
	}
	wt, err := s.lookup(st.worktrees, nameOrPath)
	if err != nil {
		return MergeResult{}, err
	}
	if wt.IsDetached || wt.IsBare || wt.Branch == git.BranchDetached {
		return MergeResult{}, &UsageError{Message: "Cannot merge from a detached or bare worktree."}
	}

	preferred := opts.BaseBranch
	if preferred == "" {
		preferred = s.BaseBranch
	}
	base := s.resolveBase(st.root, preferred)
	if !git.BranchExistsLocally(s.Runner, st.root, base) {
		return MergeResult{}, &NotFoundError{What: "Base branch", Name: base}
	}
	if wt.Branch == base {
		return MergeResult{}, &UsageError{Message: fmt.Sprintf("Worktree is already on %s.", base)}
	}

	status, err := git.GetStatus(s.Runner, st.root)
	if err != nil {
		return MergeResult{}, fmt.Errorf("checking base worktree status: %w", err)
	}
	if !status.Clean() {
		return MergeResult{}, &DirtyWorktreeError{Path: st.root, Base: true}
	}

	if current, ok := git.CurrentBranch(s.Runner, st.root); !ok || current != base {
		if res := git.Checkout(s.Runner, st.root, base); !res.OK() {
			return MergeResult{}, &MergeFailedError{Step: "checkout", Branch: base, Stderr: res.Stderr}
		}
	}

	if res := git.Merge(s.Runner, st.root, flag, wt.Branch); !res.OK() {
		return MergeResult{}, &MergeFailedError{Step: "merge", Branch: wt.Branch, Stderr: res.Stderr}
	}
	s.logf("[worktree] merged %s into %s (%s)", wt.Branch, base, flag)

	return MergeResult{BaseBranch: base, MergedBranch: wt.Branch}, nil
}

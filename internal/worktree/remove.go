package worktree

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mikanfactory/gityard/internal/git"
	"github.com/mikanfactory/gityard/internal/model"
)

// DeleteOptions controls DeleteBranch.
type DeleteOptions struct {
	// Force removes the worktree even with modified or untracked files.
	Force bool
	// ForceBranch deletes the branch with -D instead of -d.
	ForceBranch bool
	BaseBranch  string
}

// DeleteResult names the branch that was deleted.
type DeleteResult struct {
	Branch string
}

// Remove deletes the worktree matching nameOrPath after running the onRemove hooks.
func (s *Service) Remove(nameOrPath string, force bool) error {
	st, err := s.load()
	if err != nil {
		return err
	}
	wt, err := s.lookup(st.worktrees, nameOrPath)
	if err != nil {
		return err
	}
	if wt.Path == st.main {
		return &UsageError{Message: "Cannot remove the main worktree."}
	}
	return s.remove(st.root, wt, force)
}

func (s *Service) remove(root string, wt model.Worktree, force bool) error {
	cfg, err := s.projectConfig(wt.Path, root)
	if err != nil {
		return err
	}
	if cfg != nil {
		if err := s.runHooks(cfg, cfg.Hooks.OnRemove, wt.Path); err != nil {
			return err
		}
	}

	res := git.RemoveWorktree(s.Runner, root, wt.Path, force)
	if !res.OK() {
		if isDirtyRemoval(res.Stderr) {
			return &DirtyWorktreeError{Path: wt.Path, Stderr: res.Stderr}
		}
		return &CommandError{Action: "remove worktree", Stderr: res.Stderr}
	}
	s.logf("[worktree] removed %s", wt.Path)

	s.cleanupPath(wt.Path, root)
	return nil
}

func isDirtyRemoval(stderr string) bool {
	return strings.Contains(stderr, "modified or untracked files") ||
		strings.Contains(stderr, "contains modified")
}

// cleanupPath deletes a directory git left behind. The repository root and
// the filesystem root are never touched.
func (s *Service) cleanupPath(p, root string) {
	resolved, err := filepath.Abs(p)
	if err != nil {
		return
	}
	resolvedRoot, err := filepath.Abs(root)
	if err != nil {
		return
	}
	fsRoot := filepath.VolumeName(resolved) + string(filepath.Separator)
	if resolved == resolvedRoot || resolved == fsRoot {
		return
	}

	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return
	}
	if err := os.RemoveAll(resolved); err != nil {
		s.logf("[worktree] cleaning up %s: %v", resolved, err)
	}
}

// DeleteBranch removes the worktree and then deletes its branch.
// The main worktree, detached or bare worktrees and the base branch are
// refused regardless of the force flags.
func (s *Service) DeleteBranch(nameOrPath string, opts DeleteOptions) (DeleteResult, error) {
	if strings.TrimSpace(nameOrPath) == "" {
		return DeleteResult{}, &UsageError{Message: "Usage: gityard delete <worktree>"}
	}

	st, err := s.load()
	if err != nil {
		return DeleteResult{}, err
	}
	wt, err := s.lookup(st.worktrees, nameOrPath)
	if err != nil {
		return DeleteResult{}, err
	}

	if wt.Path == st.main {
		return DeleteResult{}, &UsageError{Message: "Cannot delete the main worktree."}
	}
	if wt.IsDetached || wt.IsBare || wt.Branch == git.BranchDetached {
		return DeleteResult{}, &UsageError{Message: "Cannot delete a detached or bare worktree branch."}
	}
	base := s.resolveBase(st.root, opts.BaseBranch)
	if wt.Branch == base {
		return DeleteResult{}, &UsageError{Message: "Refusing to delete base branch: " + base + "."}
	}

	if err := s.remove(st.root, wt, opts.Force); err != nil {
		return DeleteResult{}, err
	}

	result := DeleteResult{Branch: wt.Branch}
	if !git.BranchExistsLocally(s.Runner, st.root, wt.Branch) {
		return result, nil
	}

	res := git.DeleteBranch(s.Runner, st.root, wt.Branch, opts.ForceBranch)
	if !res.OK() {
		return DeleteResult{}, &CommandError{Action: "delete branch", Stderr: res.Stderr}
	}
	s.logf("[worktree] deleted branch %s", wt.Branch)
	return result, nil
}

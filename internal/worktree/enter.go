package worktree

import (
	"fmt"
	"os"
	"strings"

	"github.com/mikanfactory/gityard/internal/branchname"
	"github.com/mikanfactory/gityard/internal/git"
)

// EnterResult is the worktree a switch landed in.
type EnterResult struct {
	Path    string
	Created bool
}

// EnsureAndEnter returns the worktree matching nameOrPath, creating it when
// there is none. branch defaults to a name derived from the path.
func (s *Service) EnsureAndEnter(nameOrPath, branch string) (EnterResult, error) {
	if strings.TrimSpace(nameOrPath) == "" {
		return EnterResult{}, &InvalidPathError{Path: nameOrPath}
	}

	st, err := s.load()
	if err != nil {
		return EnterResult{}, err
	}

	if wt, ok := s.find(st.worktrees, nameOrPath); ok {
		if wt.IsBare {
			return EnterResult{}, &UsageError{Message: "Cannot switch to a bare repository: " + wt.Path}
		}
		s.logf("[worktree] switching to existing %s", wt.Path)
		return EnterResult{Path: wt.Path}, nil
	}

	if !IsValidWorktreePath(nameOrPath) {
		return EnterResult{}, &InvalidPathError{Path: nameOrPath}
	}

	target := s.absPath(strings.TrimSpace(nameOrPath))
	if _, err := os.Lstat(target); err == nil {
		return EnterResult{}, &PathCollisionError{Path: target}
	}

	branch = strings.TrimSpace(branch)
	if branch == "" {
		branch = branchname.FromPath(nameOrPath)
	}

	var res git.Result
	switch {
	case git.BranchExistsLocally(s.Runner, st.root, branch):
		res = git.AddWorktreeFromBranch(s.Runner, st.root, target, branch)
	case git.BranchExistsRemotely(s.Runner, st.root, branch):
		res = git.AddWorktreeTracking(s.Runner, st.root, target, branch)
	default:
		res = git.AddWorktree(s.Runner, st.root, target, branch)
	}
	if !res.OK() {
		return EnterResult{}, &CommandError{Action: "create worktree", Stderr: res.Stderr}
	}
	s.logf("[worktree] created %s on branch %s", target, branch)

	result := EnterResult{Path: target, Created: true}

	cfg, err := s.projectConfig(target, st.root)
	if err != nil {
		return result, err
	}
	if cfg != nil {
		if err := s.runHooks(cfg, cfg.Hooks.OnCreate, target); err != nil {
			return result, fmt.Errorf("onCreate hook: %w", err)
		}
	}

	return result, nil
}

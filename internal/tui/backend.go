package tui

import (
	"context"
	"time"

	"github.com/mikanfactory/gityard/internal/rows"
	"github.com/mikanfactory/gityard/internal/worktree"
)

// Backend is what the interactive view needs from the worktree layer.
type Backend interface {
	Load() (rows.Snapshot, error)
	EnsureAndEnter(nameOrPath, branch string) (worktree.EnterResult, error)
	Merge(nameOrPath string, opts worktree.MergeOptions) (worktree.MergeResult, error)
	Remove(nameOrPath string, force bool) error
	DeleteBranch(nameOrPath string, opts worktree.DeleteOptions) (worktree.DeleteResult, error)
}

// ServiceBackend adapts a worktree.Service to Backend.
type ServiceBackend struct {
	*worktree.Service
	// Now is the clock used for commit ages; nil means time.Now.
	Now func() time.Time
}

func (b ServiceBackend) Load() (rows.Snapshot, error) {
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	return rows.Load(context.Background(), b.Service, now())
}

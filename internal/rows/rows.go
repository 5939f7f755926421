package rows

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikanfactory/gityard/internal/git"
	"github.com/mikanfactory/gityard/internal/model"
	"github.com/mikanfactory/gityard/internal/timeago"
	"github.com/mikanfactory/gityard/internal/worktree"
)

// maxConcurrent bounds the number of rows derived at once.
const maxConcurrent = 8

// CreateLabel is the label of the synthetic first row.
const CreateLabel = "+ Create a new worktree"

// Snapshot is everything the interactive list needs to render.
type Snapshot struct {
	Root       string
	BaseBranch string
	Rows       []model.Row
}

// Load lists the worktrees of svc's repository and derives the age, status
// and diff of each. A failed derivation shows as "-" on its own field and
// never fails the snapshot. Bare repositories are left out. Rows not yet
// started when ctx is done are skipped and ctx's error is returned.
func Load(ctx context.Context, svc *worktree.Service, now time.Time) (Snapshot, error) {
	root, err := svc.Root()
	if err != nil {
		return Snapshot{}, err
	}
	worktrees, err := git.ListWorktrees(svc.Runner, root)
	if err != nil {
		return Snapshot{}, err
	}

	base := svc.ResolveBaseBranch(svc.BaseBranch)
	displayBase := svc.DisplayBase(root)

	rows := make([]model.Row, 0, len(worktrees))
	for _, wt := range worktrees {
		if wt.IsBare {
			continue
		}
		rows = append(rows, model.Row{
			Path:      wt.Path,
			Name:      worktree.DisplayName(wt.Path, displayBase),
			Branch:    wt.Branch,
			Age:       model.Placeholder,
			IsCurrent: wt.Path == root,
		})
	}

	var g errgroup.Group
	g.SetLimit(maxConcurrent)
	for i := range rows {
		row := &rows[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			derive(svc.Runner, row, base, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Snapshot{}, fmt.Errorf("deriving rows: %w", err)
	}

	return Snapshot{Root: root, BaseBranch: base, Rows: rows}, nil
}

// derive fills the display fields of row. Each field fails independently.
func derive(runner git.CommandRunner, row *model.Row, base string, now time.Time) {
	if ts, err := git.LastCommitTime(runner, row.Path); err != nil {
		log.Printf("[rows] age of %s: %v", row.Path, err)
	} else {
		row.Age = timeago.FormatAge(ts, now)
	}

	if status, err := git.GetStatus(runner, row.Path); err != nil {
		log.Printf("[rows] status of %s: %v", row.Path, err)
	} else {
		row.Status = &status
	}

	if diff, err := git.GetDiffCounts(runner, row.Path, base); err != nil {
		log.Printf("[rows] diff of %s: %v", row.Path, err)
	} else {
		row.Diff = &diff
	}
}

// WithCreateRow returns rows prefixed with the synthetic "create new" row.
func WithCreateRow(rows []model.Row) []model.Row {
	out := make([]model.Row, 0, len(rows)+1)
	out = append(out, model.Row{Name: CreateLabel, IsCreate: true})
	return append(out, rows...)
}

// StatusText renders status counts as "staged:N unstaged:N untracked:N", or "-" when unknown.
func StatusText(s *model.StatusCounts) string {
	if s == nil {
		return model.Placeholder
	}
	return fmt.Sprintf("staged:%d unstaged:%d untracked:%d", s.Staged, s.Unstaged, s.Untracked)
}

// DiffText renders diff counts as "+A -D", or "-" when unknown.
func DiffText(d *model.DiffCounts) string {
	if d == nil {
		return model.Placeholder
	}
	return fmt.Sprintf("+%d -%d", d.Added, d.Deleted)
}

package git

import (
	"fmt"
	"strings"

	"github.com/mikanfactory/gityard/internal/model"
)

// GetStatus runs `git status --porcelain` and returns aggregated file counts.
func GetStatus(runner CommandRunner, worktreePath string) (model.StatusCounts, error) {
	res := runner.Run(worktreePath, "status", "--porcelain")
	if !res.OK() {
		return model.StatusCounts{}, fmt.Errorf("git status in %s failed: %s", worktreePath, res.Stderr)
	}
	return parseStatusPorcelain(res.Stdout), nil
}

// parseStatusPorcelain counts "XY path" lines. A file with both index and
// worktree changes counts as staged and unstaged.
func parseStatusPorcelain(output string) model.StatusCounts {
	var counts model.StatusCounts

	for _, line := range strings.Split(output, "\n") {
		if len(line) < 2 {
			continue
		}

		index := line[0]
		work := line[1]

		if index == '?' && work == '?' {
			counts.Untracked++
			continue
		}
		if index != ' ' {
			counts.Staged++
		}
		if work != ' ' {
			counts.Unstaged++
		}
	}

	return counts
}

package git

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikanfactory/gityard/internal/model"
)

// DiffEntry represents a single file's diff statistics.
type DiffEntry struct {
	Path      string
	Additions int
	Deletions int
}

// GetDiffNumstat runs `git diff <base>...HEAD --numstat` and returns parsed entries.
func GetDiffNumstat(runner CommandRunner, dir string, base string) ([]DiffEntry, error) {
	res := runner.Run(dir, "diff", base+"...HEAD", "--numstat")
	if !res.OK() {
		return nil, fmt.Errorf("git diff against %s failed: %s", base, res.Stderr)
	}
	return parseDiffNumstat(res.Stdout), nil
}

// GetAllChanges returns committed changes against base merged with uncommitted
// changes against HEAD. When the uncommitted diff fails only committed changes
// are returned.
func GetAllChanges(runner CommandRunner, dir string, base string) ([]DiffEntry, error) {
	committed, err := GetDiffNumstat(runner, dir, base)
	if err != nil {
		return nil, err
	}

	res := runner.Run(dir, "diff", "HEAD", "--numstat")
	if !res.OK() {
		return committed, nil
	}
	uncommitted := parseDiffNumstat(res.Stdout)

	index := make(map[string]int, len(committed))
	merged := make([]DiffEntry, 0, len(committed)+len(uncommitted))
	for _, e := range committed {
		index[e.Path] = len(merged)
		merged = append(merged, e)
	}
	for _, e := range uncommitted {
		if i, ok := index[e.Path]; ok {
			merged[i].Additions += e.Additions
			merged[i].Deletions += e.Deletions
			continue
		}
		index[e.Path] = len(merged)
		merged = append(merged, e)
	}
	return merged, nil
}

// GetDiffCounts sums GetAllChanges into line totals.
func GetDiffCounts(runner CommandRunner, dir string, base string) (model.DiffCounts, error) {
	entries, err := GetAllChanges(runner, dir, base)
	if err != nil {
		return model.DiffCounts{}, err
	}
	var counts model.DiffCounts
	for _, e := range entries {
		counts.Added += e.Additions
		counts.Deleted += e.Deletions
	}
	return counts, nil
}

// parseDiffNumstat parses the output of `git diff --numstat`.
// Format: "<additions>\t<deletions>\t<path>" per line.
// Binary files show "-\t-\t<path>".
func parseDiffNumstat(output string) []DiffEntry {
	var entries []DiffEntry
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}

		additions, errA := strconv.Atoi(parts[0])
		deletions, errD := strconv.Atoi(parts[1])
		if errA != nil || errD != nil {
			// Binary files show "-" for additions/deletions
			additions = 0
			deletions = 0
		}

		entries = append(entries, DiffEntry{
			Path:      parts[2],
			Additions: additions,
			Deletions: deletions,
		})
	}
	return entries
}

package git

import (
	"fmt"
	"strconv"
	"strings"
)

// LastCommitTime returns the committer timestamp (unix seconds) of HEAD in dir.
func LastCommitTime(runner CommandRunner, dir string) (int64, error) {
	res := runner.Run(dir, "log", "-1", "--format=%ct")
	if !res.OK() {
		return 0, fmt.Errorf("git log in %s failed: %s", dir, res.Stderr)
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(res.Stdout), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing commit time %q: %w", res.Stdout, err)
	}
	return ts, nil
}

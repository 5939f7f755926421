package git

import (
	"strings"
)

// ResolveRoot returns the top-level directory of the repository containing startDir.
// Bare repositories have no top-level, so the git dir is used to derive one.
func ResolveRoot(runner CommandRunner, startDir string) (string, error) {
	res := runner.Run(startDir, "rev-parse", "--show-toplevel")
	if res.OK() && strings.TrimSpace(res.Stdout) != "" {
		return strings.TrimSpace(res.Stdout), nil
	}

	res = runner.Run(startDir, "rev-parse", "--git-dir")
	if !res.OK() {
		return "", &RepositoryError{Kind: NotARepository, Dir: startDir, Stderr: res.Stderr}
	}

	gitDir := strings.TrimSpace(res.Stdout)
	switch {
	case gitDir == ".git":
		return startDir, nil
	case strings.HasSuffix(gitDir, "/.git"):
		return strings.TrimSuffix(gitDir, "/.git"), nil
	}
	return startDir, nil
}

package git

import (
	"strings"
)

// BranchExistsLocally reports whether refs/heads/<branch> exists.
func BranchExistsLocally(runner CommandRunner, repoPath, branch string) bool {
	return runner.Run(repoPath, "show-ref", "--verify", "--quiet", "refs/heads/"+branch).OK()
}

// BranchExistsRemotely reports whether refs/remotes/origin/<branch> exists.
func BranchExistsRemotely(runner CommandRunner, repoPath, branch string) bool {
	return runner.Run(repoPath, "show-ref", "--verify", "--quiet", "refs/remotes/origin/"+branch).OK()
}

// CurrentBranch returns the short name of the branch checked out in dir.
// It returns "" for a detached HEAD.
func CurrentBranch(runner CommandRunner, dir string) (string, bool) {
	res := runner.Run(dir, "symbolic-ref", "--short", "HEAD")
	if !res.OK() {
		return "", false
	}
	return strings.TrimSpace(res.Stdout), true
}

// Checkout switches dir to branch.
func Checkout(runner CommandRunner, dir, branch string) Result {
	return runner.Run(dir, "checkout", branch)
}

// Merge merges branch into the branch checked out in dir using the given strategy flag.
func Merge(runner CommandRunner, dir, strategyFlag, branch string) Result {
	return runner.Run(dir, "merge", strategyFlag, branch)
}

// DeleteBranch runs `git branch -d` (or -D when force is set).
func DeleteBranch(runner CommandRunner, repoPath, branch string, force bool) Result {
	flag := "-d"
	if force {
		flag = "-D"
	}
	return runner.Run(repoPath, "branch", flag, branch)
}

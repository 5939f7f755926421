package worktree

import (
	"fmt"
	"strings"
)

func orUnknown(stderr string) string {
	if strings.TrimSpace(stderr) == "" {
		return "Unknown error"
	}
	return stderr
}

// InvalidPathError is returned when a new worktree path fails validation.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return "Invalid worktree path: " + e.Path
}

// PathCollisionError is returned when the target of a new worktree already exists.
type PathCollisionError struct {
	Path string
}

func (e *PathCollisionError) Error() string {
	return "Path already exists: " + e.Path
}

// NotFoundError is returned when a worktree or branch lookup misses.
type NotFoundError struct {
	// What names the missing thing, e.g. "Worktree" or "Base branch".
	What        string
	Name        string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	what := e.What
	if what == "" {
		what = "Worktree"
	}
	msg := fmt.Sprintf("%s not found: %s", what, e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// DirtyWorktreeError is returned when a worktree has uncommitted changes
// that block the requested operation.
type DirtyWorktreeError struct {
	Path string
	// Base is set when the dirty worktree is the merge target.
	Base   bool
	Stderr string
}

func (e *DirtyWorktreeError) Error() string {
	if e.Base {
		return "Base worktree has uncommitted changes. Commit or stash first."
	}
	return "Worktree has modified or untracked files: " + e.Path
}

// ScriptNotFoundError is returned when gityard.json has no such script.
type ScriptNotFoundError struct {
	Name string
}

func (e *ScriptNotFoundError) Error() string {
	return "Script not found: " + e.Name
}

// ScriptExecutionError is returned when a script command exits non-zero.
// Git commands carry Stderr; shell commands carry ExitCode.
type ScriptExecutionError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ScriptExecutionError) Error() string {
	if e.Stderr != "" {
		return "Script execution failed: " + e.Stderr
	}
	return fmt.Sprintf("Script execution failed with exit code %d", e.ExitCode)
}

// MergeFailedError is returned when checking out the base branch or the merge itself fails.
type MergeFailedError struct {
	// Step is "checkout" or "merge".
	Step   string
	Branch string
	Stderr string
}

func (e *MergeFailedError) Error() string {
	if e.Step == "checkout" {
		return fmt.Sprintf("Failed to checkout %s: %s", e.Branch, orUnknown(e.Stderr))
	}
	return "Merge failed: " + orUnknown(e.Stderr)
}

// UsageError is returned when an operation is invoked with arguments it refuses.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// CommandError is a generic git failure carrying raw stderr.
type CommandError struct {
	// Action describes what failed, e.g. "create worktree".
	Action string
	Stderr string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s", e.Action, orUnknown(e.Stderr))
}

package git

import (
	"errors"
	"strings"
)

// RepositoryErrorKind distinguishes why a repository query failed.
type RepositoryErrorKind int

const (
	Generic RepositoryErrorKind = iota
	NotARepository
	ToolUnavailable
)

var (
	ErrNotARepository  = errors.New("not a git repository")
	ErrToolUnavailable = errors.New("git is not installed or not accessible")
)

// RepositoryError is returned when git cannot answer a repository query.
type RepositoryError struct {
	Kind   RepositoryErrorKind
	Dir    string
	Stderr string
}

func (e *RepositoryError) Error() string {
	switch e.Kind {
	case NotARepository:
		if e.Dir != "" {
			return "Not a git repository: " + e.Dir
		}
		return "Not a git repository"
	case ToolUnavailable:
		return "Git is not installed or not accessible. Please install Git first."
	}
	msg := e.Stderr
	if msg == "" {
		msg = "Unknown error"
	}
	return "Failed to list worktrees: " + msg
}

func (e *RepositoryError) Is(target error) bool {
	switch target {
	case ErrNotARepository:
		return e.Kind == NotARepository
	case ErrToolUnavailable:
		return e.Kind == ToolUnavailable
	}
	return false
}

// classify maps a failed listing result to a RepositoryError.
func classify(dir string, res Result) *RepositoryError {
	stderr := res.Stderr
	switch {
	case strings.Contains(stderr, "not a git repository"):
		return &RepositoryError{Kind: NotARepository, Dir: dir, Stderr: stderr}
	case strings.Contains(stderr, "executable file not found"),
		strings.Contains(stderr, "command not found"),
		strings.Contains(stderr, "not found"):
		return &RepositoryError{Kind: ToolUnavailable, Dir: dir, Stderr: stderr}
	}
	return &RepositoryError{Kind: Generic, Dir: dir, Stderr: stderr}
}

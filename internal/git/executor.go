package git

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"sync"
)

// Result is the captured outcome of one git invocation.
// Stdout and Stderr have trailing whitespace trimmed.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// OK reports whether the command exited with status zero.
func (r Result) OK() bool {
	return r.ExitCode == 0
}

// CommandRunner abstracts git execution for testability.
// A non-zero exit is reported through Result, never as a Go error.
type CommandRunner interface {
	Run(dir string, args ...string) Result
}

// OSCommandRunner executes real git commands via os/exec.
type OSCommandRunner struct {
	// Executable overrides the git binary; empty means "git" from PATH.
	Executable string
}

func (r OSCommandRunner) Run(dir string, args ...string) Result {
	exe := r.Executable
	if exe == "" {
		exe = "git"
	}

	cmd := exec.Command(exe, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{}
	err := cmd.Run()
	res.Stdout = strings.TrimRight(stdout.String(), " \t\r\n")
	res.Stderr = strings.TrimRight(stderr.String(), " \t\r\n")

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			// The process never started; surface the reason as stderr.
			res.ExitCode = -1
			if res.Stderr == "" {
				res.Stderr = err.Error()
			}
		}
	}

	log.Printf("[git] %s %v (dir=%s) exit=%d", exe, args, dir, res.ExitCode)
	return res
}

// FakeCommandRunner is a test double that returns preset results and records calls.
// It is safe for concurrent use as long as Results is not modified during calls.
type FakeCommandRunner struct {
	Results map[string]Result
	Calls   [][]string

	mu sync.Mutex
}

func (r *FakeCommandRunner) key(dir string, args ...string) string {
	return fmt.Sprintf("%s:%v", dir, args)
}

func (r *FakeCommandRunner) Run(dir string, args ...string) Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, append([]string{dir}, args...))
	key := r.key(dir, args...)
	if res, ok := r.Results[key]; ok {
		return res
	}
	return Result{ExitCode: 1, Stderr: fmt.Sprintf("FakeCommandRunner: no output for key %q", key)}
}

// Called reports whether a call with exactly these args was recorded, in any dir.
func (r *FakeCommandRunner) Called(args ...string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	want := fmt.Sprintf("%v", args)
	for _, call := range r.Calls {
		if fmt.Sprintf("%v", call[1:]) == want {
			return true
		}
	}
	return false
}

// Ok builds a successful Result with the given stdout.
func Ok(stdout string) Result {
	return Result{Stdout: strings.TrimRight(stdout, " \t\r\n")}
}

// Fail builds a failed Result with the given stderr.
func Fail(stderr string) Result {
	return Result{ExitCode: 1, Stderr: stderr}
}

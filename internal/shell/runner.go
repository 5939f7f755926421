package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
)

// Runner abstracts shell command execution for testability.
// The command's output is streamed to stdout and stderr.
type Runner interface {
	Run(dir, command string, stdout, stderr io.Writer) (int, error)
}

// OSRunner executes commands through `sh -c`.
type OSRunner struct {
	// Shell overrides the interpreter; empty means "sh".
	Shell string
}

// Run returns the exit code. The error is non-nil only when the shell could not be started.
func (r OSRunner) Run(dir, command string, stdout, stderr io.Writer) (int, error) {
	sh := r.Shell
	if sh == "" {
		sh = "sh"
	}

	cmd := exec.Command(sh, "-c", command)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Printf("[shell] %q (dir=%s) exit=%d", command, dir, exitErr.ExitCode())
			return exitErr.ExitCode(), nil
		}
		log.Printf("[shell] %q (dir=%s) failed to start: %v", command, dir, err)
		return -1, fmt.Errorf("starting %q: %w", command, err)
	}

	log.Printf("[shell] %q (dir=%s) exit=0", command, dir)
	return 0, nil
}

// Call is one recorded FakeRunner invocation.
type Call struct {
	Dir     string
	Command string
}

// FakeRunner is a test double that returns preset exit codes and records calls.
// Commands without a preset exit code succeed.
type FakeRunner struct {
	ExitCodes map[string]int
	Errors    map[string]error
	Output    map[string]string
	Calls     []Call
}

func (r *FakeRunner) Run(dir, command string, stdout, stderr io.Writer) (int, error) {
	r.Calls = append(r.Calls, Call{Dir: dir, Command: command})
	if err, ok := r.Errors[command]; ok {
		return -1, err
	}
	if out, ok := r.Output[command]; ok && stdout != nil {
		io.WriteString(stdout, out)
	}
	return r.ExitCodes[command], nil
}

// Commands returns the recorded commands in call order.
func (r *FakeRunner) Commands() []string {
	cmds := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		cmds[i] = c.Command
	}
	return cmds
}

// String renders the recorded commands for test failure messages.
func (r *FakeRunner) String() string {
	return strings.Join(r.Commands(), "; ")
}

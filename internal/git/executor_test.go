package git

import (
	"os/exec"
	"strings"
	"testing"
)

func TestOSCommandRunner_GitVersion(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	runner := OSCommandRunner{}
	res := runner.Run(".", "--version")
	if !res.OK() {
		t.Fatalf("git --version failed: %q", res.Stderr)
	}
	if !strings.HasPrefix(res.Stdout, "git version") {
		t.Errorf("unexpected output: %q", res.Stdout)
	}
	if strings.HasSuffix(res.Stdout, "\n") {
		t.Error("stdout should be trimmed")
	}
}

func TestOSCommandRunner_NonZeroExitIsNotAPanicOrError(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	runner := OSCommandRunner{}
	res := runner.Run(t.TempDir(), "rev-parse", "--show-toplevel")
	if res.OK() {
		t.Fatal("expected non-zero exit outside a repository")
	}
	if !strings.Contains(res.Stderr, "not a git repository") {
		t.Errorf("stderr = %q, want not-a-repository marker", res.Stderr)
	}
}

func TestOSCommandRunner_MissingExecutable(t *testing.T) {
	runner := OSCommandRunner{Executable: "gityard-no-such-binary"}
	res := runner.Run(".", "status")
	if res.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "executable file not found") {
		t.Errorf("stderr = %q, want executable-not-found marker", res.Stderr)
	}
}

func TestFakeCommandRunner_ReturnsResult(t *testing.T) {
	runner := &FakeCommandRunner{
		Results: map[string]Result{
			"/repo:[worktree list --porcelain]": Ok("worktree /repo\nbranch refs/heads/main\n"),
		},
	}

	res := runner.Run("/repo", "worktree", "list", "--porcelain")
	if !res.OK() {
		t.Fatalf("unexpected failure: %q", res.Stderr)
	}
	if res.Stdout != "worktree /repo\nbranch refs/heads/main" {
		t.Errorf("unexpected output: %q", res.Stdout)
	}
	if len(runner.Calls) != 1 {
		t.Fatalf("len(Calls) = %d, want 1", len(runner.Calls))
	}
	if !runner.Called("worktree", "list", "--porcelain") {
		t.Error("Called() should find the recorded call")
	}
}

func TestFakeCommandRunner_NoOutput(t *testing.T) {
	runner := &FakeCommandRunner{}

	res := runner.Run("/repo", "unknown")
	if res.OK() {
		t.Fatal("expected failure for missing key")
	}
}

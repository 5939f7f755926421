package shell

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestOSRunner_Output(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not installed")
	}
	var stdout, stderr bytes.Buffer
	code, err := OSRunner{}.Run(t.TempDir(), "echo hello; echo oops 1>&2", &stdout, &stderr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != 0 {
		t.Errorf("code = %d, want 0", code)
	}
	if strings.TrimSpace(stdout.String()) != "hello" {
		t.Errorf("stdout = %q", stdout.String())
	}
	if strings.TrimSpace(stderr.String()) != "oops" {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestOSRunner_ExitCode(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not installed")
	}
	code, err := OSRunner{}.Run(t.TempDir(), "exit 3", &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if code != 3 {
		t.Errorf("code = %d, want 3", code)
	}
}

func TestOSRunner_RunsInDir(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not installed")
	}
	dir := t.TempDir()
	var stdout bytes.Buffer
	if _, err := (OSRunner{}).Run(dir, "pwd -P", &stdout, &bytes.Buffer{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.Len() == 0 {
		t.Error("expected pwd output")
	}
}

func TestOSRunner_MissingShell(t *testing.T) {
	code, err := OSRunner{Shell: "gityard-no-such-shell"}.Run(".", "true", &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for missing shell")
	}
	if code != -1 {
		t.Errorf("code = %d, want -1", code)
	}
}

func TestFakeRunner(t *testing.T) {
	boom := errors.New("boom")
	runner := &FakeRunner{
		ExitCodes: map[string]int{"false": 1},
		Errors:    map[string]error{"broken": boom},
		Output:    map[string]string{"echo hi": "hi\n"},
	}

	var out bytes.Buffer
	if code, _ := runner.Run("/w", "echo hi", &out, nil); code != 0 || out.String() != "hi\n" {
		t.Errorf("echo: code=%d out=%q", code, out.String())
	}
	if code, _ := runner.Run("/w", "false", nil, nil); code != 1 {
		t.Errorf("false: code=%d, want 1", code)
	}
	if _, err := runner.Run("/w", "broken", nil, nil); !errors.Is(err, boom) {
		t.Errorf("broken: err=%v", err)
	}

	want := []string{"echo hi", "false", "broken"}
	got := runner.Commands()
	if len(got) != len(want) {
		t.Fatalf("Commands() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Commands()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if runner.Calls[0].Dir != "/w" {
		t.Errorf("Dir = %q", runner.Calls[0].Dir)
	}
}

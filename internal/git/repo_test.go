package git

import (
	"errors"
	"testing"
)

func TestResolveRoot(t *testing.T) {
	tests := []struct {
		name    string
		results map[string]Result
		want    string
	}{
		{
			name: "show-toplevel",
			results: map[string]Result{
				"/work/sub:[rev-parse --show-toplevel]": Ok("/work\n"),
			},
			want: "/work",
		},
		{
			name: "git dir is .git",
			results: map[string]Result{
				"/work/sub:[rev-parse --show-toplevel]": Fail("fatal: this operation must be run in a work tree"),
				"/work/sub:[rev-parse --git-dir]":       Ok(".git"),
			},
			want: "/work/sub",
		},
		{
			name: "git dir with .git suffix",
			results: map[string]Result{
				"/work/sub:[rev-parse --show-toplevel]": Ok(""),
				"/work/sub:[rev-parse --git-dir]":       Ok("/srv/project/.git"),
			},
			want: "/srv/project",
		},
		{
			name: "bare repository",
			results: map[string]Result{
				"/work/sub:[rev-parse --show-toplevel]": Fail("fatal: this operation must be run in a work tree"),
				"/work/sub:[rev-parse --git-dir]":       Ok("."),
			},
			want: "/work/sub",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &FakeCommandRunner{Results: tt.results}
			got, err := ResolveRoot(runner, "/work/sub")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveRoot = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveRoot_NotARepository(t *testing.T) {
	runner := &FakeCommandRunner{}
	_, err := ResolveRoot(runner, "/tmp")
	if !errors.Is(err, ErrNotARepository) {
		t.Fatalf("err = %v, want ErrNotARepository", err)
	}
}

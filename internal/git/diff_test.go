package git

import (
	"reflect"
	"testing"
)

func TestParseDiffNumstat(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []DiffEntry
	}{
		{name: "empty", output: "", want: nil},
		{
			name:   "text and binary files",
			output: "7\t2\tinternal/cli/app.go\n-\t-\tdocs/logo.png\n",
			want: []DiffEntry{
				{Path: "internal/cli/app.go", Additions: 7, Deletions: 2},
				{Path: "docs/logo.png"},
			},
		},
		{
			name:   "rename keeps the arrow path",
			output: "1\t1\tcmd/{old => new}/main.go\n",
			want:   []DiffEntry{{Path: "cmd/{old => new}/main.go", Additions: 1, Deletions: 1}},
		},
		{
			name:   "blank and malformed lines skipped",
			output: "\nnot numstat\n3\t0\tgityard.json\n\n",
			want:   []DiffEntry{{Path: "gityard.json", Additions: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseDiffNumstat(tt.output); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseDiffNumstat() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGetDiffNumstat_Failure(t *testing.T) {
	runner := &FakeCommandRunner{
		Results: map[string]Result{
			"/wt:[diff master...HEAD --numstat]": Fail("fatal: ambiguous argument 'master...HEAD'"),
		},
	}

	if _, err := GetDiffNumstat(runner, "/wt", "master"); err == nil {
		t.Fatal("expected error for unknown base")
	}
}

func TestGetAllChanges(t *testing.T) {
	const (
		committedKey   = "/wt:[diff master...HEAD --numstat]"
		uncommittedKey = "/wt:[diff HEAD --numstat]"
	)

	tests := []struct {
		name        string
		committed   Result
		uncommitted Result
		want        []DiffEntry
		wantErr     bool
	}{
		{
			name:        "working tree edits fold into committed entries",
			committed:   Ok("4\t1\ta.go\n2\t0\tb.go"),
			uncommitted: Ok("1\t1\ta.go\n6\t0\tc.go"),
			want: []DiffEntry{
				{Path: "a.go", Additions: 5, Deletions: 2},
				{Path: "b.go", Additions: 2},
				{Path: "c.go", Additions: 6},
			},
		},
		{
			name:        "only uncommitted",
			committed:   Ok(""),
			uncommitted: Ok("0\t9\tgone.go"),
			want:        []DiffEntry{{Path: "gone.go", Deletions: 9}},
		},
		{
			name:        "uncommitted failure is ignored",
			committed:   Ok("1\t0\ta.go"),
			uncommitted: Fail("fatal: bad revision 'HEAD'"),
			want:        []DiffEntry{{Path: "a.go", Additions: 1}},
		},
		{
			name:      "committed failure is returned",
			committed: Fail("fatal: bad revision"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &FakeCommandRunner{
				Results: map[string]Result{
					committedKey:   tt.committed,
					uncommittedKey: tt.uncommitted,
				},
			}

			got, err := GetAllChanges(runner, "/wt", "master")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetAllChanges() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGetDiffCounts(t *testing.T) {
	runner := &FakeCommandRunner{
		Results: map[string]Result{
			"/wt:[diff master...HEAD --numstat]": Ok("10\t2\ta.go\n-\t-\timg.png\n3\t3\tb.go"),
			"/wt:[diff HEAD --numstat]":          Ok("1\t0\ta.go"),
		},
	}

	got, err := GetDiffCounts(runner, "/wt", "master")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Added != 14 || got.Deleted != 5 {
		t.Errorf("GetDiffCounts() = %+v, want {14 5}", got)
	}
}

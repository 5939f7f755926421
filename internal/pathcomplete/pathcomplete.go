package pathcomplete

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DirLister reads directory entries for a given path.
type DirLister func(path string) ([]os.DirEntry, error)

// DefaultDirLister reads directory entries using os.ReadDir.
func DefaultDirLister(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Completer suggests directories for the worktree path input.
// Relative input is resolved against BaseDir, and suggestions keep the form
// the user typed: relative stays relative and ~/ stays ~/.
type Completer struct {
	BaseDir    string
	HomeDir    string
	Lister     DirLister
	MaxResults int
}

// NewCompleter returns a Completer reading the real filesystem.
func NewCompleter(baseDir string) Completer {
	home, _ := os.UserHomeDir()
	return Completer{
		BaseDir:    baseDir,
		HomeDir:    home,
		Lister:     DefaultDirLister,
		MaxResults: 5,
	}
}

// Suggest returns directory suggestions for input, each ending in "/".
// Hidden directories are offered only when the typed prefix starts with ".".
func (c Completer) Suggest(input string) []string {
	if input == "" || c.Lister == nil {
		return nil
	}

	typedDir, prefix := splitDirPrefix(input)
	readDir := c.resolve(typedDir)

	entries, err := c.Lister(readDir)
	if err != nil {
		return nil
	}

	var suggestions []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(prefix, ".") {
			continue
		}
		suggestions = append(suggestions, typedDir+name+"/")
	}

	sort.Strings(suggestions)
	if c.MaxResults > 0 && len(suggestions) > c.MaxResults {
		suggestions = suggestions[:c.MaxResults]
	}
	return suggestions
}

// resolve maps the typed directory portion to a readable filesystem path.
func (c Completer) resolve(typedDir string) string {
	switch {
	case typedDir == "":
		return c.base()
	case strings.HasPrefix(typedDir, "~/"):
		return filepath.Join(c.HomeDir, typedDir[2:])
	case filepath.IsAbs(typedDir):
		return filepath.Clean(typedDir)
	}
	return filepath.Join(c.base(), typedDir)
}

func (c Completer) base() string {
	if c.BaseDir == "" {
		return "."
	}
	return c.BaseDir
}

// splitDirPrefix splits input into the typed directory (with trailing "/",
// or "" when there is none) and the final partial segment.
func splitDirPrefix(input string) (dir, prefix string) {
	idx := strings.LastIndex(input, "/")
	if idx < 0 {
		return "", input
	}
	return input[:idx+1], input[idx+1:]
}

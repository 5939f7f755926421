package worktree

import (
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mikanfactory/gityard/internal/config"
	"github.com/mikanfactory/gityard/internal/git"
	"github.com/mikanfactory/gityard/internal/model"
	"github.com/mikanfactory/gityard/internal/shell"
)

const maxSuggestions = 3

// Service performs worktree operations against the repository containing Dir.
type Service struct {
	Runner git.CommandRunner
	Shell  shell.Runner
	// Dir is the start directory used to locate the repository and to
	// resolve relative paths.
	Dir string
	// BaseBranch is the preferred merge target when an operation names none.
	BaseBranch string
	// DisplayBasePath is the global fallback for the project displayBasePath.
	DisplayBasePath string
	// Stdout and Stderr receive the output of script commands.
	Stdout io.Writer
	Stderr io.Writer
}

// NewService returns a Service rooted at dir (the process cwd when empty).
func NewService(runner git.CommandRunner, sh shell.Runner, dir string) *Service {
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	return &Service{
		Runner:     runner,
		Shell:      sh,
		Dir:        dir,
		BaseBranch: config.DefaultBaseBranch,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

func (s *Service) logf(format string, args ...any) {
	log.Printf(format, args...)
}

func (s *Service) stdout() io.Writer {
	if s.Stdout == nil {
		return io.Discard
	}
	return s.Stdout
}

func (s *Service) stderr() io.Writer {
	if s.Stderr == nil {
		return io.Discard
	}
	return s.Stderr
}

// Root returns the repository root directory.
func (s *Service) Root() (string, error) {
	return git.ResolveRoot(s.Runner, s.Dir)
}

// List returns every worktree of the repository in git's order.
func (s *Service) List() ([]model.Worktree, error) {
	root, err := s.Root()
	if err != nil {
		return nil, err
	}
	return git.ListWorktrees(s.Runner, root)
}

// repoState is the common prologue of every operation.
// root is the top level of the checkout the service runs in; main is the
// main worktree, which git always lists first. main is empty for a bare
// repository.
type repoState struct {
	root      string
	main      string
	worktrees []model.Worktree
}

func (s *Service) load() (repoState, error) {
	root, err := s.Root()
	if err != nil {
		return repoState{}, err
	}
	worktrees, err := git.ListWorktrees(s.Runner, root)
	if err != nil {
		return repoState{}, err
	}
	st := repoState{root: root, worktrees: worktrees}
	if len(worktrees) > 0 && !worktrees[0].IsBare {
		st.main = worktrees[0].Path
	}
	return st, nil
}

// find returns the first worktree whose path, absolute path or short name
// equals nameOrPath.
func (s *Service) find(worktrees []model.Worktree, nameOrPath string) (model.Worktree, bool) {
	abs := s.absPath(nameOrPath)
	for _, wt := range worktrees {
		if wt.Path == nameOrPath || wt.Path == abs || Name(wt.Path) == nameOrPath {
			return wt, true
		}
	}
	return model.Worktree{}, false
}

func (s *Service) lookup(worktrees []model.Worktree, nameOrPath string) (model.Worktree, error) {
	if wt, ok := s.find(worktrees, nameOrPath); ok {
		return wt, nil
	}
	return model.Worktree{}, &NotFoundError{
		What:        "Worktree",
		Name:        nameOrPath,
		Suggestions: suggest(worktrees, nameOrPath),
	}
}

// suggest returns up to three short names fuzzily matching name.
func suggest(worktrees []model.Worktree, name string) []string {
	names := make([]string, 0, len(worktrees))
	for _, wt := range worktrees {
		if !wt.IsBare {
			names = append(names, Name(wt.Path))
		}
	}

	var out []string
	for _, m := range fuzzy.Find(Name(name), names) {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// absPath resolves p against the service directory. A leading "~/" is the
// home directory.
func (s *Service) absPath(p string) string {
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.Dir, p)
}

// ResolveBaseBranch returns preferred when it exists locally. A missing
// "master" falls back to "main" when that exists.
func (s *Service) ResolveBaseBranch(preferred string) string {
	root, err := s.Root()
	if err != nil {
		return preferred
	}
	return s.resolveBase(root, preferred)
}

func (s *Service) resolveBase(root, preferred string) string {
	if preferred == "" {
		preferred = s.BaseBranch
	}
	if preferred == "" {
		preferred = config.DefaultBaseBranch
	}
	if git.BranchExistsLocally(s.Runner, root, preferred) {
		return preferred
	}
	if preferred == config.DefaultBaseBranch && git.BranchExistsLocally(s.Runner, root, "main") {
		return "main"
	}
	return preferred
}

// projectConfig loads gityard.json from dir, falling back to root.
func (s *Service) projectConfig(dir, root string) (*model.ProjectConfig, error) {
	cfg, err := config.LoadProject(dir)
	if err != nil || cfg != nil || dir == root {
		return cfg, err
	}
	return config.LoadProject(root)
}

// DisplayBase returns the configured display base path for the repository.
// The project setting wins over the global one.
func (s *Service) DisplayBase(root string) string {
	cfg, err := config.LoadProject(root)
	if err != nil {
		s.logf("[worktree] loading config: %v", err)
	}
	if base := cfg.DisplayBase(); base != "" {
		return base
	}
	return s.DisplayBasePath
}

// IsValidWorktreePath reports whether p can name a new worktree:
// non-empty and without any ".." segment.
func IsValidWorktreePath(p string) bool {
	p = strings.TrimSpace(p)
	if p == "" {
		return false
	}
	for _, seg := range strings.Split(filepath.ToSlash(p), "/") {
		if seg == ".." {
			return false
		}
	}
	return true
}

// Name returns the final "/" segment of p, or p itself when that is empty.
func Name(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 && i < len(p)-1 {
		return p[i+1:]
	}
	return p
}

// DisplayName renders p relative to base when p lies under it, else its short name.
func DisplayName(p, base string) string {
	if base != "" {
		base = strings.TrimRight(base, "/")
		if rel, ok := strings.CutPrefix(p, base+"/"); ok && rel != "" {
			return path.Clean(rel)
		}
	}
	return Name(p)
}

// Package cli implements the gityard command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mikanfactory/gityard/internal/config"
	"github.com/mikanfactory/gityard/internal/git"
	"github.com/mikanfactory/gityard/internal/shell"
	"github.com/mikanfactory/gityard/internal/tui"
	"github.com/mikanfactory/gityard/internal/worktree"
)

// PickerFunc runs the interactive view until it finishes.
type PickerFunc func(m tui.Model, out io.Writer) (tui.Outcome, error)

// App holds the collaborators shared by every command.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Runner git.CommandRunner
	Shell  shell.Runner
	// Dir is the working directory; empty means the process cwd.
	Dir string
	// LogPath is the debug log file; empty means ~/.config/gityard/debug.log.
	LogPath string
	// IsTerminal reports whether an interactive view can be shown.
	IsTerminal func() bool
	Picker     PickerFunc

	verbose    bool
	configPath string
	logFile    io.Closer
}

// New returns an App wired to the real git binary, shell and terminal.
func New(stdin io.Reader, stdout, stderr io.Writer) *App {
	return &App{
		Stdin:      stdin,
		Stdout:     stdout,
		Stderr:     stderr,
		Runner:     git.OSCommandRunner{},
		Shell:      shell.OSRunner{},
		IsTerminal: stdioIsTerminal,
		Picker:     runProgram,
	}
}

func stdioIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}

// Run executes args (without the program name) and returns the exit code.
func (a *App) Run(args []string) int {
	root := a.NewRootCommand()
	root.SetArgs(withDefaultCommand(root, args))
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	err := root.Execute()
	a.closeLog()
	if err != nil {
		fmt.Fprintf(a.Stderr, "Error: %s\n", err)
		var dirty *worktree.DirtyWorktreeError
		if errors.As(err, &dirty) && !dirty.Base {
			fmt.Fprintln(a.Stderr, "Tip: Use --force to remove worktrees with modified or untracked files")
		}
		return 1
	}
	return 0
}

// NewRootCommand builds the command tree.
func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gityard",
		Short:         "Manage git worktrees with ease",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLog()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "write debug logs to stderr")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to the global config file")

	root.AddCommand(
		a.newInitCommand(),
		a.newListCommand(),
		a.newRmCommand(),
		a.newSwitchCommand(),
		a.newRunCommand(),
		a.newMergeCommand(),
		a.newDeleteCommand(),
	)
	return root
}

// withDefaultCommand prepends "switch" unless args already name a subcommand
// or ask for help.
func withDefaultCommand(root *cobra.Command, args []string) []string {
	root.InitDefaultHelpCmd()
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		return args
	}
	if cmd, _, err := root.Find(args); err == nil && cmd != root {
		return args
	}
	return append([]string{"switch"}, args...)
}

func (a *App) setupLog() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	if a.verbose {
		log.SetOutput(a.Stderr)
		return
	}

	logPath := a.LogPath
	if logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.SetOutput(io.Discard)
			return
		}
		logPath = filepath.Join(home, ".config", "gityard", "debug.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	a.logFile = f
	log.SetOutput(f)
}

func (a *App) closeLog() {
	log.SetOutput(io.Discard)
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// service builds a worktree.Service with the global config applied.
// baseFlag, when set, wins over the configured base branch.
func (a *App) service(baseFlag string) (*worktree.Service, error) {
	path, err := config.ResolveGlobalPath(a.configPath)
	if err != nil {
		return nil, err
	}
	global, err := config.LoadGlobal(path)
	if err != nil {
		return nil, err
	}

	svc := worktree.NewService(a.Runner, a.Shell, a.Dir)
	svc.Stdout = a.Stdout
	svc.Stderr = a.Stderr
	svc.BaseBranch = global.BaseBranch
	svc.DisplayBasePath = global.DisplayBasePath
	if baseFlag != "" {
		svc.BaseBranch = baseFlag
	}
	return svc, nil
}

package cli

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/mikanfactory/gityard/internal/pathcomplete"
	"github.com/mikanfactory/gityard/internal/tui"
	"github.com/mikanfactory/gityard/internal/worktree"
)

func (a *App) newSwitchCommand() *cobra.Command {
	var cd bool
	cmd := &cobra.Command{
		Use:   "switch [name] [branch]",
		Short: "Switch to a worktree, creating it when missing",
		Long: `Switch to a worktree by name or path, creating it when it does not exist.
Without a name an interactive picker is shown.

With --cd only a shell command is printed, for use as:
  eval "$(gityard switch --cd <name>)"`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service("")
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return a.pick(svc, cd)
			}

			branch := ""
			if len(args) > 1 {
				branch = args[1]
			}
			res, err := svc.EnsureAndEnter(args[0], branch)
			if err != nil {
				return err
			}
			a.printEntered(res.Path, res.Created, cd)
			return nil
		},
	}
	cmd.Flags().BoolVar(&cd, "cd", false, `print only cd "<path>" for shell integration`)
	return cmd
}

func (a *App) printEntered(path string, created, cd bool) {
	switch {
	case cd:
		fmt.Fprintf(a.Stdout, "cd \"%s\"\n", path)
	case created:
		fmt.Fprintf(a.Stdout, "Created and switched to worktree: %s\n", path)
	default:
		fmt.Fprintf(a.Stdout, "Switched to worktree: %s\n", path)
	}
}

// pick runs the interactive view. In cd mode it draws on stderr so that
// stdout carries only the cd line.
func (a *App) pick(svc *worktree.Service, cd bool) error {
	if a.IsTerminal == nil || !a.IsTerminal() {
		return &worktree.UsageError{Message: "Interactive mode requires a terminal. Usage: gityard switch <name> [branch]"}
	}

	// Hook output would corrupt the view; it goes to the debug log instead.
	svc.Stdout = log.Writer()
	svc.Stderr = log.Writer()

	out := a.Stdout
	if cd {
		out = a.Stderr
	}

	m := tui.NewModel(tui.ServiceBackend{Service: svc}, pathcomplete.NewCompleter(svc.Dir))
	outcome, err := a.Picker(m, out)
	if err != nil {
		return err
	}

	switch {
	case outcome.Cancelled:
		return nil
	case outcome.Err != nil:
		return outcome.Err
	case cd && outcome.Path != "":
		fmt.Fprintf(a.Stdout, "cd \"%s\"\n", outcome.Path)
	case outcome.Message != "":
		fmt.Fprintln(a.Stdout, outcome.Message)
	}
	return nil
}

// runProgram runs m inline on out with mouse support.
func runProgram(m tui.Model, out io.Writer) (tui.Outcome, error) {
	zone.NewGlobal()
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return tui.Outcome{}, fmt.Errorf("running interactive view: %w", err)
	}
	fm, ok := final.(tui.Model)
	if !ok {
		return tui.Outcome{}, fmt.Errorf("unexpected model type %T", final)
	}
	return fm.Outcome(), nil
}

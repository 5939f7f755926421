package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikanfactory/gityard/internal/config"
	"github.com/mikanfactory/gityard/internal/worktree"
)

func (a *App) newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create gityard.json in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.Dir
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("getting working directory: %w", err)
				}
				dir = wd
			}
			path, err := config.Init(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "Created %s\n", path)
			return nil
		},
	}
}

func (a *App) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all worktrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service("")
			if err != nil {
				return err
			}
			wts, err := svc.List()
			if err != nil {
				return err
			}
			for _, wt := range wts {
				detached := ""
				if wt.IsDetached {
					detached = " (detached)"
				}
				fmt.Fprintf(a.Stdout, "%s %s%s [%s]\n", wt.Path, wt.Branch, detached, shortCommit(wt.Commit))
			}
			return nil
		},
	}
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}

func (a *App) newRmCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a worktree by name or path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service("")
			if err != nil {
				return err
			}
			if err := svc.Remove(args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "Removed worktree: %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "remove even with modified or untracked files")
	return cmd
}

func (a *App) newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <worktree> <script>",
		Short: "Run a gityard.json script in a worktree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service("")
			if err != nil {
				return err
			}
			if err := svc.RunScript(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "Executed script '%s' in '%s'.\n", args[1], args[0])
			return nil
		},
	}
}

func (a *App) newMergeCommand() *cobra.Command {
	var opts worktree.MergeOptions
	cmd := &cobra.Command{
		Use:   "merge <worktree>",
		Short: "Merge a worktree branch into the base branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(opts.BaseBranch)
			if err != nil {
				return err
			}
			res, err := svc.Merge(firstArg(args), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "Merged %s into %s.\n", res.MergedBranch, res.BaseBranch)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Squash, "squash", false, "squash merge")
	cmd.Flags().BoolVar(&opts.NoFF, "no-ff", false, "create a merge commit")
	cmd.Flags().StringVar(&opts.BaseBranch, "base", "", "branch to merge into")
	return cmd
}

func (a *App) newDeleteCommand() *cobra.Command {
	var opts worktree.DeleteOptions
	cmd := &cobra.Command{
		Use:   "delete <worktree>",
		Short: "Remove a worktree and delete its branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(opts.BaseBranch)
			if err != nil {
				return err
			}
			res, err := svc.DeleteBranch(firstArg(args), opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.Stdout, "Removed worktree and deleted branch: %s.\n", res.Branch)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "remove the worktree even with local changes")
	cmd.Flags().BoolVar(&opts.ForceBranch, "force-branch", false, "delete the branch with -D")
	cmd.Flags().StringVar(&opts.BaseBranch, "base", "", "base branch that must not be deleted")
	return cmd
}

// firstArg returns args[0] or "" so the service reports its own usage error.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

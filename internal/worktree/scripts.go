package worktree

import (
	"fmt"
	"strings"

	"github.com/mikanfactory/gityard/internal/config"
	"github.com/mikanfactory/gityard/internal/model"
)

// RunScript runs the named gityard.json script inside a worktree.
// The worktree's own gityard.json is preferred over the repository root's.
func (s *Service) RunScript(worktreeNameOrPath, scriptName string) error {
	st, err := s.load()
	if err != nil {
		return err
	}
	wt, err := s.lookup(st.worktrees, worktreeNameOrPath)
	if err != nil {
		return err
	}

	cfg, err := s.projectConfig(wt.Path, st.root)
	if err != nil {
		return err
	}
	cmds := config.Script(cfg, scriptName)
	if cmds == nil {
		return &ScriptNotFoundError{Name: scriptName}
	}

	s.logf("[worktree] running script %q in %s", scriptName, wt.Path)
	return s.runCommands(wt.Path, cmds)
}

// runHooks runs each hook entry in dir. An entry naming a script runs that
// script; anything else runs as a command.
func (s *Service) runHooks(cfg *model.ProjectConfig, hooks model.Commands, dir string) error {
	for _, entry := range hooks {
		if cmds, ok := cfg.Scripts[entry]; ok {
			if err := s.runCommands(dir, cmds); err != nil {
				return err
			}
			continue
		}
		if err := s.runCommand(dir, entry); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) runCommands(dir string, cmds model.Commands) error {
	for _, cmd := range cmds {
		if err := s.runCommand(dir, cmd); err != nil {
			return err
		}
	}
	return nil
}

// runCommand sends git commands to the git runner and everything else to the shell.
func (s *Service) runCommand(dir, command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}

	if fields[0] == "git" {
		res := s.Runner.Run(dir, fields[1:]...)
		if res.Stdout != "" {
			fmt.Fprintln(s.stdout(), res.Stdout)
		}
		if !res.OK() {
			return &ScriptExecutionError{Command: command, ExitCode: res.ExitCode, Stderr: res.Stderr}
		}
		return nil
	}

	code, err := s.Shell.Run(dir, command, s.stdout(), s.stderr())
	if err != nil {
		return &ScriptExecutionError{Command: command, ExitCode: -1, Stderr: err.Error()}
	}
	if code != 0 {
		return &ScriptExecutionError{Command: command, ExitCode: code}
	}
	return nil
}

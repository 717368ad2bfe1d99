// Package main provides the entry point for the pd CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRunCmd creates the run command.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <address> [script args...]",
		Short: "Execute a stored script",
		Long: `Execute a script directly from its worktree path.

Scripts without a shebang line require confirmation before running.
Remaining arguments are passed to the script unchanged. The script's
exit code is propagated as pd's own exit code.

Only meaningful with --kind script.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRun,
	}
}

// runRun executes the run command.
func runRun(cmd *cobra.Command, args []string) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	result, err := st.Run(args[0], args[1:])
	if err != nil {
		printer.Error(err)
		return err
	}

	if isJSONMode(cmd) {
		if err := printer.WriteJSON(map[string]any{
			"address":   args[0],
			"exit_code": result.ExitCode,
			"stdout":    result.Stdout,
			"stderr":    result.Stderr,
		}); err != nil {
			return err
		}
	} else {
		if result.Stdout != "" {
			printer.Print("%s", result.Stdout)
		}
		if result.Stderr != "" {
			printer.Stderr("%s", result.Stderr)
		}
	}

	if result.ExitCode != 0 {
		return exitCodeError(result.ExitCode)
	}
	return nil
}

// exitCodeError propagates a script's exit status as pd's own exit code.
type exitCodeError int

func (e exitCodeError) Error() string {
	return fmt.Sprintf("script exited with status %d", int(e))
}

func (e exitCodeError) ExitCode() int { return int(e) }

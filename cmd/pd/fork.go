// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newForkCmd creates the fork command.
func newForkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fork <owner/name>",
		Short: "Copy another user's item into your branch",
		Long: `Copy an item from another user's branch into your own.

The source address must be fully qualified (owner/name). The copy keeps
the same name and is committed and pushed to your branch.`,
		Args: cobra.ExactArgs(1),
		RunE: runFork,
	}
}

// runFork executes the fork command.
func runFork(cmd *cobra.Command, args []string) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	target, err := st.Fork(args[0], st.User())
	if err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": "Forked " + args[0] + " to " + target.String(),
		"source":  args[0],
		"target":  target.String(),
	})
}

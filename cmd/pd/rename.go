// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newRenameCmd creates the rename command.
func newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rename <src> <dst>",
		Aliases: []string{"mv"},
		Short:   "Rename an item in your branch",
		Long: `Rename an item within your own branch, then commit and push.

Both names must be bare (no owner/ prefix): renames never cross branches.
Fails if the destination already exists.`,
		Args: cobra.ExactArgs(2),
		RunE: runRename,
	}
}

// runRename executes the rename command.
func runRename(cmd *cobra.Command, args []string) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := st.Rename(args[0], args[1]); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": "Renamed " + st.Kind().String() + ": " + args[0] + " to " + args[1],
		"from":    args[0],
		"to":      args[1],
	})
}

// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newDeleteCmd creates the delete command.
func newDeleteCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete an item from your branch",
		Long: `Delete an item from your own branch, then commit and push the removal.

Asks for confirmation unless --force is given. Items in other users'
branches cannot be deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args, forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Delete without asking")

	return cmd
}

// runDelete executes the delete command.
func runDelete(cmd *cobra.Command, args []string, force bool) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	deleted, err := st.Delete(args[0], force)
	if err != nil {
		printer.Error(err)
		return err
	}
	if !deleted {
		printer.Println("Cancelled.")
		return nil
	}

	return printer.Success(map[string]any{
		"message": "Deleted " + st.Kind().String() + ": " + args[0],
		"address": args[0],
	})
}

// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/store"
)

// newEditCmd creates the edit command.
func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <name>",
		Short: "Open an item in your editor",
		Long: `Open an item from your branch in $VISUAL/$EDITOR and wait for the editor
to exit. If the content changed, the change is committed and pushed; an
unchanged file is a no-op. Script edits that drop the shebang line are
reverted unless confirmed.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}
}

// runEdit executes the edit command.
func runEdit(cmd *cobra.Command, args []string) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	outcome, err := st.Edit(args[0])
	if err != nil {
		printer.Error(err)
		return err
	}

	switch outcome {
	case store.EditSaved:
		return printer.Success(map[string]any{
			"message": "Edited and saved " + st.Kind().String() + ": " + args[0],
			"address": args[0],
		})
	case store.EditReverted:
		printer.Println("Aborting edit. Changes have been reverted.")
	default:
		printer.Println("No changes made.")
	}
	return nil
}

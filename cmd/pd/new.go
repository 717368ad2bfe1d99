// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new item interactively",
		Long: `Create a new item in your branch by typing its content, terminated by a
line containing only 'EOF'. The kind's file suffix is appended
automatically if missing.

Overwriting an existing file asks for confirmation; scripts without a
shebang line do too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args, forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite without asking")

	return cmd
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, args []string, force bool) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	created, err := st.CreateNew(args[0], force)
	if err != nil {
		printer.Error(err)
		return err
	}
	if !created {
		printer.Println("Cancelled.")
		return nil
	}

	return printer.Success(map[string]any{
		"message": "Saved: " + args[0],
		"name":    args[0],
	})
}

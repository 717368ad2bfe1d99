// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newReadCmd creates the read command.
func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <[owner/]name>",
		Short: "Print an item's content",
		Long: `Print the raw content of an item.

A bare name reads from your own branch; owner/name reads from another
user's branch.

Examples:
  pd read greeting
  pd read johndoe/greeting`,
		Args: cobra.ExactArgs(1),
		RunE: runRead,
	}
}

// runRead executes the read command.
func runRead(cmd *cobra.Command, args []string) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	content, err := st.Read(args[0])
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"address": args[0], "content": content})
	}
	printer.Print("%s", content)
	return nil
}

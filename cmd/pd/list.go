// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all items",
		Long: `List every item of the selected kind across all branches.

Your own items come first (bare names, alphabetical), then other users'
items as owner/name (alphabetical).`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
}

// runList executes the list command.
func runList(cmd *cobra.Command, _ []string) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	items, err := st.List()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"user": st.User(), "items": items})
	}

	for _, item := range items {
		printer.Println(item)
	}
	printer.Dimln("∴")
	return nil
}

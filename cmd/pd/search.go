// Package main provides the entry point for the pd CLI.
package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/store"
)

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "search <query>",
		Aliases: []string{"grep"},
		Short:   "Search item contents across all branches",
		Long: `Search the cached contents of every branch for a substring.

Matching is literal, case-sensitive, and line-oriented. Each match
reports the item address, the line number, and the matching line.`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}
}

// runSearch executes the search command.
func runSearch(cmd *cobra.Command, args []string) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	matches := st.Search(args[0])

	if isJSONMode(cmd) {
		if matches == nil {
			matches = []store.Match{}
		}
		return printer.WriteJSON(map[string]any{
			"query":   args[0],
			"matches": matches,
		})
	}

	if len(matches) == 0 {
		printer.Dimln("No matches for " + strconv.Quote(args[0]))
		return nil
	}

	for _, m := range matches {
		printer.KeyValue(m.Address+":"+strconv.Itoa(m.Line), m.Text)
	}
	printer.Dimln("∴")
	return nil
}

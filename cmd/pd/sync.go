// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"
)

// newSyncCmd creates the sync command.
func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch all branches and refresh worktrees",
		Long: `Fetch every branch from the remote and fast-forward each worktree.

A branch that cannot be fast-forwarded is reported and skipped; the
remaining branches still sync. The item cache is rebuilt afterwards.`,
		Args: cobra.NoArgs,
		RunE: runSync,
	}
}

// runSync executes the sync command.
func runSync(cmd *cobra.Command, _ []string) error {
	printer := newCmdPrinter(cmd)

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	results, err := st.SyncAll()
	if err != nil {
		printer.Error(err)
		return err
	}

	synced := make([]string, 0, len(results))
	failed := map[string]string{}
	for _, r := range results {
		if r.Err != nil {
			failed[r.Branch] = r.Err.Error()
			continue
		}
		synced = append(synced, r.Branch)
	}

	if isJSONMode(cmd) {
		return printer.WriteJSON(map[string]any{
			"synced": synced,
			"failed": failed,
		})
	}

	for _, r := range results {
		if r.Err != nil {
			printer.Warn("%s: %s", r.Branch, r.Err.Error())
			continue
		}
		printer.KeyValue(r.Branch, "synced")
	}
	printer.Dimln("∴")
	return nil
}

// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/clipboard"
	"github.com/promptdir/pd/internal/output"
)

// newCopyCmd creates the copy command.
func newCopyCmd() *cobra.Command {
	var (
		argFlags []string
		suffix   string
		hydrated bool
	)

	cmd := &cobra.Command{
		Use:     "copy <address>",
		Aliases: []string{"cp"},
		Short:   "Copy an item to the clipboard",
		Long: `Copy an item's content to the system clipboard.

With --hydrate the content is run through the template engine first,
using the same --arg and --suffix semantics as 'pd hydrate'. If no
clipboard is available the content is printed to stdout instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args[0], argFlags, suffix, hydrated)
		},
	}

	cmd.Flags().StringArrayVarP(&argFlags, "arg", "a", nil, "Template argument as key=value (repeatable)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Clause appended after hydration")
	cmd.Flags().BoolVar(&hydrated, "hydrate", false, "Hydrate the template before copying")
	return cmd
}

// runCopy executes the copy command.
func runCopy(cmd *cobra.Command, address string, argFlags []string, suffix string, hydrated bool) error {
	printer := newCmdPrinter(cmd)

	templateArgs, err := parseTemplateArgs(argFlags)
	if err != nil {
		err = output.NewUserError(err.Error())
		printer.Error(err)
		return err
	}

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	content, err := st.CopyContent(address, templateArgs, suffix, hydrated)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := clipboard.Write(content); err != nil {
		// No clipboard on this system; fall back to printing so the
		// content is still usable in a pipe.
		if isJSONMode(cmd) {
			return printer.WriteJSON(map[string]any{
				"address":   address,
				"content":   content,
				"clipboard": false,
			})
		}
		printer.Print("%s", content)
		return nil
	}

	return printer.Success(map[string]any{
		"message":   "Copied " + address + " to clipboard",
		"address":   address,
		"clipboard": true,
	})
}

// Package main provides the entry point for the pd CLI.
package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/output"
)

// newWriteCmd creates the write command.
func newWriteCmd() *cobra.Command {
	var contentFlag string

	cmd := &cobra.Command{
		Use:   "write <name> --content <text>",
		Short: "Write an item to your branch",
		Long: `Create or overwrite an item in your own branch, then commit and push it.

Without --content, the content is read from stdin. Writing into another
user's branch is refused.

Examples:
  pd write greeting --content "Hello, world!"
  cat body.md | pd write greeting`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(cmd, args, contentFlag)
		},
	}

	cmd.Flags().StringVar(&contentFlag, "content", "", "Item content (reads stdin when omitted)")

	return cmd
}

// runWrite executes the write command.
func runWrite(cmd *cobra.Command, args []string, content string) error {
	printer := newCmdPrinter(cmd)

	if content == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			err = output.NewSystemErrorWithCause("reading content from stdin", err)
			printer.Error(err)
			return err
		}
		content = string(data)
	}

	st, err := buildStore(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if err := st.Write(args[0], content); err != nil {
		printer.Error(err)
		return err
	}

	return printer.Success(map[string]any{
		"message": "Wrote " + st.Kind().String() + ": " + args[0],
		"address": args[0],
	})
}

// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/output"
)

// newHydrateCmd creates the hydrate command.
func newHydrateCmd() *cobra.Command {
	var (
		argFlags []string
		suffix   string
	)

	cmd := &cobra.Command{
		Use:   "hydrate <address>",
		Short: "Fill a prompt template's placeholders",
		Long: `Hydrate a prompt template and print the result.

{placeholder} tokens are replaced with values given via --arg key=value.
Every placeholder must be covered; arguments that match no placeholder
are appended as ", key is value" clauses in the order given. --suffix
appends one more clause at the very end.

Values are substituted literally in a single pass: a value containing
{braces} is never expanded again.`,
		Example: `  pd hydrate capital --arg animal=fox --arg city=Paris
  pd hydrate alice/summarize --arg tone=formal --suffix "keep it short"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHydrate(cmd, args[0], argFlags, suffix)
		},
	}

	cmd.Flags().StringArrayVarP(&argFlags, "arg", "a", nil, "Template argument as key=value (repeatable)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Clause appended after hydration")
	return cmd
}

// runHydrate executes the hydrate command.
func runHydrate(cmd *cobra.Command, address string, argFlags []string, suffix string) error {
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

	result, err := st.Hydrate(address, templateArgs, suffix)
	if err != nil {
		printer.Error(err)
		return err
	}

	if isJSONMode(cmd) {
		return printer.WriteJSON(map[string]any{
			"address": address,
			"content": result,
		})
	}
	printer.Println(result)
	return nil
}

// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/llm"
	"github.com/promptdir/pd/internal/output"
)

// newAskCmd creates the ask command.
func newAskCmd() *cobra.Command {
	var (
		argFlags []string
		suffix   string
		model    string
	)

	cmd := &cobra.Command{
		Use:   "ask <address>",
		Short: "Hydrate a prompt and send it to a local LLM",
		Long: `Hydrate a prompt template and send the result to a local LLM server.

The server must expose an OpenAI-compatible API; Ollama's default
endpoint is assumed unless PD_LOCAL_URL is set. --arg and --suffix
behave exactly as for 'pd hydrate'.`,
		Example: `  pd ask capital --arg animal=fox --arg city=Paris
  PD_LOCAL_URL=http://localhost:1234/v1 pd ask alice/review --arg lang=go`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, args[0], argFlags, suffix, model)
		},
	}

	cmd.Flags().StringArrayVarP(&argFlags, "arg", "a", nil, "Template argument as key=value (repeatable)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "Clause appended after hydration")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model name (empty uses the server's loaded model)")
	return cmd
}

// runAsk executes the ask command.
func runAsk(cmd *cobra.Command, address string, argFlags []string, suffix, model string) error {
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

	prompt, err := st.Hydrate(address, templateArgs, suffix)
	if err != nil {
		printer.Error(err)
		return err
	}

	client := llm.New(model)
	resp, err := client.Complete(cmd.Context(), llm.Request{Prompt: prompt})
	if err != nil {
		printer.Error(err)
		return err
	}

	if isJSONMode(cmd) {
		return printer.WriteJSON(map[string]any{
			"address": address,
			"prompt":  prompt,
			"model":   resp.Model,
			"content": resp.Content,
		})
	}
	printer.Println(resp.Content)
	return nil
}

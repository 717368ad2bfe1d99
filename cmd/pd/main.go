// Package main provides the entry point for the pd CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/config"
	"github.com/promptdir/pd/internal/envfile"
	"github.com/promptdir/pd/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the pd CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pd",
		Short: "A Git-native shared prompt directory",
		Long: `pd - a shared store for prompts, snippets, and scripts on top of one Git repository.

Every collaborator gets their own branch; your items live as files in your
branch's worktree, and every write is an ordinary commit and push. Reading
and forking other users' items is addressing them as owner/name.

Prompts are templates: {placeholder} tokens are filled in by 'pd hydrate'
and 'pd copy --hydrate'.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'pd --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load env files for settings like PD_LOCAL_URL that can't always be
	// exported. Environment variables take precedence over file values.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		envfile.LoadDefaults(config.Dir())
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Color output: auto, always, or never")
	cmd.PersistentFlags().StringP("kind", "k", "prompt", "Content kind: prompt, snippet, or script")
	cmd.PersistentFlags().String("repo", "", "Repository slug (e.g. myorg/prompts); remembered across runs")
	cmd.PersistentFlags().String("base-dir", "", "Local cache directory for clones and worktrees")

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "content", Title: "Content Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "template", Title: "Template Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "sync", Title: "Sync Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Content commands
	addGroupedCommand(cmd, newListCmd(), "content")
	addGroupedCommand(cmd, newReadCmd(), "content")
	addGroupedCommand(cmd, newWriteCmd(), "content")
	addGroupedCommand(cmd, newNewCmd(), "content")
	addGroupedCommand(cmd, newEditCmd(), "content")
	addGroupedCommand(cmd, newDeleteCmd(), "content")
	addGroupedCommand(cmd, newRenameCmd(), "content")
	addGroupedCommand(cmd, newForkCmd(), "content")
	addGroupedCommand(cmd, newSearchCmd(), "content")
	addGroupedCommand(cmd, newRunCmd(), "content")

	// Template commands
	addGroupedCommand(cmd, newHydrateCmd(), "template")
	addGroupedCommand(cmd, newCopyCmd(), "template")
	addGroupedCommand(cmd, newAskCmd(), "template")

	// Sync commands
	addGroupedCommand(cmd, newSyncCmd(), "sync")

	// Admin commands
	addGroupedCommand(cmd, newConfigCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a command to its group.
func addGroupedCommand(cmd *cobra.Command, sub *cobra.Command, groupID string) {
	sub.GroupID = groupID
	cmd.AddCommand(sub)
}

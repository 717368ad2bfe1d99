// Package main provides the entry point for the pd CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/config"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	var (
		repoFlag    string
		baseDirFlag string
		editorFlag  string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update persisted settings",
		Long: `Show the persisted configuration, or update it with flags.

Settings are stored as YAML under the pd config directory
(PD_CONFIG_HOME, then XDG_CONFIG_HOME/pd, then ~/.config/pd).`,
		Example: `  pd config
  pd config --repo myorg/prompts
  pd config --editor "code --wait"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, repoFlag, baseDirFlag, editorFlag)
		},
	}

	cmd.Flags().StringVar(&repoFlag, "repo", "", "Set the repository slug")
	cmd.Flags().StringVar(&baseDirFlag, "base-dir", "", "Set the worktree cache directory")
	cmd.Flags().StringVar(&editorFlag, "editor", "", "Set the editor command")
	return cmd
}

// runConfig executes the config command.
func runConfig(cmd *cobra.Command, repoFlag, baseDirFlag, editorFlag string) error {
	printer := newCmdPrinter(cmd)

	cfg, err := config.Load()
	if err != nil {
		printer.Error(err)
		return err
	}

	changed := false
	if repoFlag != "" {
		cfg.Repo = repoFlag
		changed = true
	}
	if baseDirFlag != "" {
		cfg.BaseDir = baseDirFlag
		changed = true
	}
	if editorFlag != "" {
		cfg.Editor = editorFlag
		changed = true
	}

	if changed {
		if err := config.Save(cfg); err != nil {
			printer.Error(err)
			return err
		}
	}

	baseDir := cfg.BaseDir
	if baseDir == "" {
		baseDir = config.DefaultBaseDir
	}

	if isJSONMode(cmd) {
		return printer.WriteJSON(map[string]any{
			"repo":     cfg.Repo,
			"base_dir": baseDir,
			"editor":   cfg.Editor,
			"path":     config.Dir(),
		})
	}

	printer.KeyValue("repo", cfg.Repo)
	printer.KeyValue("base-dir", baseDir)
	printer.KeyValue("editor", cfg.Editor)
	printer.Dimln(config.Dir())
	return nil
}

// Package main provides the entry point for the pd CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/promptdir/pd/internal/config"
	"github.com/promptdir/pd/internal/editor"
	"github.com/promptdir/pd/internal/interact"
	"github.com/promptdir/pd/internal/output"
	"github.com/promptdir/pd/internal/store"
	"github.com/promptdir/pd/internal/worktree"
)

// newCmdPrinter builds the printer for a command from its flags and output.
func newCmdPrinter(cmd *cobra.Command) *output.Printer {
	w := cmd.OutOrStdout()
	colored := output.ResolveColorMode(persistentString(cmd, "color"), output.IsTTY(w))
	return output.NewPrinter(w, isJSONMode(cmd), colored).WithStderr(cmd.ErrOrStderr())
}

// persistentString reads a persistent string flag from the command hierarchy.
func persistentString(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// resolveSettings merges flags with the persisted config. The last-used repo
// is remembered so later invocations can omit --repo.
func resolveSettings(cmd *cobra.Command) (repo, baseDir string, cfg *config.Config, err error) {
	cfg, err = config.Load()
	if err != nil {
		return "", "", nil, err
	}

	repo = persistentString(cmd, "repo")
	if repo == "" {
		repo = cfg.Repo
	}

	baseDir = persistentString(cmd, "base-dir")
	if baseDir == "" {
		baseDir = cfg.BaseDir
	}
	if baseDir == "" {
		baseDir = config.DefaultBaseDir
	}
	baseDir = config.ExpandPath(baseDir)

	if repo != "" && repo != cfg.Repo {
		cfg.Repo = repo
		if err := config.Save(cfg); err != nil {
			return "", "", nil, err
		}
	}

	return repo, baseDir, cfg, nil
}

// buildStore wires the store for a command: config, registry, prompter, and
// editor. This is the composition root every store-backed command goes
// through.
func buildStore(cmd *cobra.Command) (*store.Store, error) {
	kind, err := store.ParseKind(persistentString(cmd, "kind"))
	if err != nil {
		return nil, output.NewUserError(err.Error())
	}

	repo, baseDir, cfg, err := resolveSettings(cmd)
	if err != nil {
		return nil, err
	}

	reg, err := worktree.NewRegistry(repo, baseDir)
	if err != nil {
		return nil, err
	}

	return store.New(kind, reg,
		store.WithPrompter(interact.New(os.Stdin, cmd.ErrOrStderr())),
		store.WithEditor(func(path string) error {
			return editor.Open(cfg.Editor, path)
		}),
	)
}

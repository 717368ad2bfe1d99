package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultBaseDir is where bare clones and worktrees live unless overridden.
const DefaultBaseDir = "~/.git_worktree_cache"

// Config holds persisted pd settings. The last-used repository is remembered
// so `pd` can be invoked without --repo after the first run.
type Config struct {
	// Repo is the repository slug, e.g. "myorg/prompts".
	Repo string `yaml:"repo"`
	// BaseDir is the local cache directory for bare clones and worktrees.
	BaseDir string `yaml:"base_dir,omitempty"`
	// Editor overrides $VISUAL/$EDITOR when set.
	Editor string `yaml:"editor,omitempty"`
}

// path returns the config file location inside Dir.
func path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file. A missing file is not an error; it returns a
// zero Config so first runs work with flags alone.
func Load() (*Config, error) {
	data, err := os.ReadFile(path())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path(), err)
	}
	return &cfg, nil
}

// Save writes the config file, creating the config directory if needed.
func Save(cfg *Config) error {
	dir := Dir()
	if dir == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path(), data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) string {
	if p == "~" || len(p) >= 2 && p[0] == '~' && (p[1] == '/' || p[1] == filepath.Separator) {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		if p == "~" {
			return home
		}
		return filepath.Join(home, p[2:])
	}
	return p
}

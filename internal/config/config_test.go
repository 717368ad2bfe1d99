package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsZeroConfig(t *testing.T) {
	t.Setenv("PD_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Repo != "" || cfg.BaseDir != "" || cfg.Editor != "" {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("PD_CONFIG_HOME", t.TempDir())

	want := &Config{
		Repo:    "myorg/prompts",
		BaseDir: "/var/cache/pd",
		Editor:  "code --wait",
	}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}
}

func TestSaveCreatesConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pd")
	t.Setenv("PD_CONFIG_HOME", dir)

	if err := Save(&Config{Repo: "a/b"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config file missing: %v", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PD_CONFIG_HOME", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("repo: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with malformed YAML expected error")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/cache", filepath.Join(home, "cache")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"~user/path", "~user/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_NonexistentFile(t *testing.T) {
	err := Load("/nonexistent/.env")
	if err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
}

func TestLoad_SetsUnsetVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.local")
	content := "PD_TEST_A=hello\nPD_TEST_B=world\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	// Ensure vars are unset
	t.Setenv("PD_TEST_A", "")
	t.Setenv("PD_TEST_B", "")
	_ = os.Unsetenv("PD_TEST_A") //nolint:errcheck
	_ = os.Unsetenv("PD_TEST_B") //nolint:errcheck

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("PD_TEST_A"); got != "hello" {
		t.Errorf("PD_TEST_A = %q, want %q", got, "hello")
	}
	if got := os.Getenv("PD_TEST_B"); got != "world" {
		t.Errorf("PD_TEST_B = %q, want %q", got, "world")
	}
}

func TestLoad_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "PD_TEST_C=from_file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PD_TEST_C", "from_env")

	if err := Load(path); err != nil {
		t.Fatal(err)
	}

	if got := os.Getenv("PD_TEST_C"); got != "from_env" {
		t.Errorf("PD_TEST_C = %q, want %q (env should take precedence)", got, "from_env")
	}
}

func TestLoad_SkipsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# a comment\n\nPD_TEST_D=ok\nnot a pair\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PD_TEST_D", "")
	_ = os.Unsetenv("PD_TEST_D") //nolint:errcheck

	if err := Load(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("PD_TEST_D"); got != "ok" {
		t.Errorf("PD_TEST_D = %q, want %q", got, "ok")
	}
}

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"plain pair", "KEY=value", "KEY", "value", true},
		{"double quoted", `URL="http://localhost:1234/v1"`, "URL", "http://localhost:1234/v1", true},
		{"single quoted", "NAME='alice'", "NAME", "alice", true},
		{"spaces trimmed", "  KEY  =  value  ", "KEY", "value", true},
		{"value with equals", "PAIR=a=b", "PAIR", "a=b", true},
		{"no equals", "NOTAPAIR", "", "", false},
		{"empty key", "=value", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := parseEnvLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if key != tt.wantKey || value != tt.wantValue {
				t.Errorf("parseEnvLine(%q) = %q, %q, want %q, %q",
					tt.line, key, value, tt.wantKey, tt.wantValue)
			}
		})
	}
}

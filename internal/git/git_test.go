// Package git provides Git operations via exec for the pd CLI.
package git

import (
	"os/exec"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	out, err := Run("version")
	if err != nil {
		t.Fatalf("Run(version) error = %v", err)
	}
	if !strings.HasPrefix(out, "git version") {
		t.Errorf("Run(version) = %q", out)
	}
}

func TestRunInvalidCommand(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	_, err := Run("not-a-real-subcommand")
	if err == nil {
		t.Fatal("Run() expected error")
	}
	if !strings.Contains(err.Error(), "git command failed") {
		t.Errorf("error = %q, want git command failed prefix", err.Error())
	}
}

func TestUserName(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	if out, err := exec.Command("git", "-C", dir, "init").CombinedOutput(); err != nil {
		t.Fatalf("git init failed: %v\n%s", err, out)
	}
	if out, err := exec.Command("git", "-C", dir, "config", "user.name", "Ada Lovelace").CombinedOutput(); err != nil {
		t.Fatalf("git config failed: %v\n%s", err, out)
	}

	name, err := UserName(dir)
	if err != nil {
		t.Fatalf("UserName() error = %v", err)
	}
	if name != "Ada_Lovelace" {
		t.Errorf("UserName() = %q, want Ada_Lovelace (spaces normalized)", name)
	}
}

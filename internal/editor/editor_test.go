package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	if got := Resolve("code --wait"); got != "code --wait" {
		t.Errorf("Resolve(override) = %q", got)
	}
	if got := Resolve(""); got != "vi" {
		t.Errorf("Resolve() with nothing set = %q, want vi", got)
	}

	t.Setenv("EDITOR", "nano")
	if got := Resolve(""); got != "nano" {
		t.Errorf("Resolve() = %q, want nano", got)
	}

	t.Setenv("VISUAL", "emacs")
	if got := Resolve(""); got != "emacs" {
		t.Errorf("Resolve() = %q, want emacs (VISUAL wins)", got)
	}
}

func TestOpenRunsEditorWithArgs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test editor script requires a POSIX shell")
	}

	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")
	script := filepath.Join(dir, "fakeeditor")
	// The fake editor records its arguments and exits.
	content := "#!/bin/sh\necho \"$@\" > " + marker + "\n"
	if err := os.WriteFile(script, []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}

	target := filepath.Join(dir, "file.txt")
	if err := Open(script+" --flag", target); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	recorded, err := os.ReadFile(marker)
	if err != nil {
		t.Fatalf("fake editor never ran: %v", err)
	}
	if got := string(recorded); got != "--flag "+target+"\n" {
		t.Errorf("editor args = %q", got)
	}
}

func TestOpenEditorFailure(t *testing.T) {
	if err := Open("/nonexistent/editor", "/tmp/x"); err == nil {
		t.Error("Open() with missing editor expected error")
	}
}

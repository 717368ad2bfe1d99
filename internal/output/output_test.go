package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	data := map[string]any{
		"message": "Wrote prompt: capital",
		"address": "alice/capital",
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["message"] != "Wrote prompt: capital" {
		t.Errorf("message = %v, want %q", result["message"], "Wrote prompt: capital")
	}
	if result["address"] != "alice/capital" {
		t.Errorf("address = %v, want %q", result["address"], "alice/capital")
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	exitErr := NewUserError("prompt not found: nope")
	printer.Error(exitErr)

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["error"] != "prompt not found: nope" {
		t.Errorf("error = %v, want %q", result["error"], "prompt not found: nope")
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

// conflictCoded is a domain-style error implementing ExitCoder.
type conflictCoded struct{}

func (conflictCoded) Error() string { return "cannot write in another user's branch: bob" }

func (conflictCoded) ExitCode() int { return ExitConflict }

func TestPrinter_JSON_ErrorUsesExitCoder(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Error(conflictCoded{})

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitConflict {
		t.Errorf("code = %v, want %d", result["code"], ExitConflict)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // no colors

	err := printer.Success(map[string]any{
		"message": "Forked bob/greeting to alice/greeting",
	})
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	if !strings.Contains(buf.String(), "Forked bob/greeting to alice/greeting") {
		t.Errorf("output = %q, want the message", buf.String())
	}
}

func TestPrinter_Human_ErrorGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(errors.New("boom"))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if !strings.Contains(errOut.String(), "Error") || !strings.Contains(errOut.String(), "boom") {
		t.Errorf("stderr = %q, want styled error line", errOut.String())
	}
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Print("Hello, %s!", "world")

	if buf.String() != "Hello, world!" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello, world!")
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.KeyValue("repo", "myorg/prompts")

	if buf.String() != "repo: myorg/prompts\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_StderrSilentInJSONMode(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, true, false).WithStderr(&errOut)

	printer.Stderr("hint: %s\n", "pipe me")

	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want empty in JSON mode", errOut.String())
	}
}

func TestIsTTY(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		mode  string
		isTTY bool
		want  bool
	}{
		{"never", true, false},
		{"always", false, true},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		if got := ResolveColorMode(tt.mode, tt.isTTY); got != tt.want {
			t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.mode, tt.isTTY, got, tt.want)
		}
	}
}

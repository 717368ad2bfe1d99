// Package editor invokes the user's external editor and blocks until it
// exits.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/promptdir/pd/internal/output"
)

// Resolve returns the editor command to use: the override when set,
// otherwise $VISUAL, then $EDITOR, then "vi".
func Resolve(override string) string {
	if override != "" {
		return override
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

// Open opens path in the resolved editor, attached to the terminal, and
// blocks until the editor process exits.
func Open(override, path string) error {
	// The editor value may carry arguments, e.g. "code --wait".
	parts := strings.Fields(Resolve(override))
	args := append(parts[1:], path)

	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return output.NewSystemErrorWithCause("editor failed: "+parts[0], err)
	}
	return nil
}

// Package git provides Git operations via exec for the pd CLI.
//
// Every operation the store performs runs through RunIn, scoped with -C to
// either the bare clone or one branch's worktree. Calls are synchronous and
// blocking; cancellation is the caller's concern via the context.
package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/promptdir/pd/internal/output"
)

// RunIn executes a git command inside dir (a repository or worktree path).
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunIn(dir string, args ...string) (string, error) {
	return RunInContext(context.Background(), dir, args...)
}

// RunInContext executes a git command inside dir with the given context.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunInContext(ctx context.Context, dir string, args ...string) (string, error) {
	full := append([]string{"-C", dir}, args...)
	return RunContext(ctx, full...)
}

// Run executes a git command with the given arguments in the current directory.
func Run(args ...string) (string, error) {
	return RunContext(context.Background(), args...)
}

// RunContext executes a git command with the given context and arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunContext(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check if git is not found
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("git not found: ensure git is installed and in PATH")
		}

		// Git command failed - include stderr in message
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// UserName returns the configured git identity name for the repository at
// dir, with spaces normalized to underscores. This normalized name doubles
// as the user's branch name.
func UserName(dir string) (string, error) {
	name, err := RunIn(dir, "config", "user.name")
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to read git user.name", err)
	}
	if name == "" {
		return "", output.NewSystemError("git user.name is not set: run 'git config --global user.name \"Your Name\"'")
	}
	return strings.ReplaceAll(name, " ", "_"), nil
}

package store

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/promptdir/pd/internal/output"
)

// checkWritePolicy applies the kind's extra write policy to a file on disk.
// Only scripts have one: the first line should be a #! shebang. A missing
// shebang asks the operator to confirm; declining returns false and the
// caller reverts or removes the file.
func (s *Store) checkWritePolicy(path string) bool {
	if !kindSpecs[s.kind].shebang {
		return true
	}
	if hasShebang(path) {
		return true
	}
	return s.confirm(fmt.Sprintf("Script %q has no shebang line (e.g. #!/bin/sh). Proceed anyway?", path))
}

// hasShebang reports whether the file's first line starts with "#!".
func hasShebang(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close() //nolint:errcheck // read-only

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return false
	}
	return bytes.HasPrefix(scanner.Bytes(), []byte("#!"))
}

// RunResult captures a script execution.
type RunResult struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// Run executes the addressed script as a subprocess with the given
// arguments. A non-zero exit is reported in the result, not returned as an
// error; only failures to resolve or start the script are errors. Script
// kind only.
func (s *Store) Run(address string, args []string) (*RunResult, error) {
	if s.kind != KindScript {
		return nil, output.NewUserError("run is only available for scripts")
	}

	a, err := ParseAddress(address, s.user)
	if err != nil {
		return nil, err
	}
	_, path, err := s.itemPath(a)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &NotFoundError{Kind: s.kind, Address: address}
	}

	if !hasShebang(path) && !s.confirm(fmt.Sprintf("Script %q has no shebang line. Run it anyway?", a.Name)) {
		return nil, output.NewUserError("aborted: " + address)
	}

	// The executable bit can get lost across clones and filesystems.
	if err := os.Chmod(path, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("marking script executable", err)
	}

	cmd := exec.Command(path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	result := &RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, output.NewSystemErrorWithCause("running "+address, err)
	}
	return result, nil
}

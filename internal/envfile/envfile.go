// Package envfile loads environment variables from .env files.
// Variables already set in the environment take precedence.
//
// pd uses this for settings that are awkward to export everywhere, like
// PD_LOCAL_URL for the local LLM server. See LoadDefaults for the lookup
// chain.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadDefaults loads the standard pd env files in priority order:
//
//  1. $CWD/.env.local (per-directory override, gitignored)
//  2. $CWD/.env
//  3. <configDir>/env (global fallback)
//
// First file to define a variable wins; real environment variables always
// take precedence over file values. Errors are ignored: a malformed or
// unreadable env file never blocks the CLI.
func LoadDefaults(configDir string) {
	_ = Load(".env.local")
	_ = Load(".env")
	if configDir != "" {
		_ = Load(filepath.Join(configDir, "env"))
	}
}

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist. Returns an error only for read failures.
func Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseEnvLine(line)
		if !ok {
			continue
		}

		// Only set if not already in the environment
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return nil
}

// parseEnvLine extracts KEY=VALUE from a line.
// Handles optional quoting (single or double quotes) around the value.
func parseEnvLine(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	key = strings.TrimSpace(parts[0])
	value = strings.TrimSpace(parts[1])

	if key == "" {
		return "", "", false
	}

	// Strip matching quotes
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			value = value[1 : len(value)-1]
		}
	}

	return key, value, true
}

// Package config provides the global configuration for pd.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the pd configuration directory.
//
// Resolution:
//   - $PD_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/pd if set (respects XDG on any platform)
//   - %AppData%/pd on Windows
//   - ~/.config/pd on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("PD_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pd")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pd")
		}
	}

	// macOS and Linux: ~/.config/pd
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pd")
}

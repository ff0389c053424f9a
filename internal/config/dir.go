// Package config loads project settings from .lint-staged.yml and resolves
// the global configuration directory.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the lint-staged configuration directory.
//
// Resolution:
//   - $LINT_STAGED_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/lint-staged if set (respects XDG on any platform)
//   - %AppData%/lint-staged on Windows
//   - ~/.config/lint-staged on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("LINT_STAGED_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "lint-staged")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "lint-staged")
		}
	}

	// macOS and Linux: ~/.config/lint-staged
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lint-staged")
}

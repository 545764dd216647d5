// Package autostart manages the per-user login registration for Hydrate:
// a Run registry value on Windows, a LaunchAgent on macOS, and an XDG
// autostart desktop entry on Linux.
package autostart

import (
	"fmt"
	"os"
)

// AppName is the registration label used across platforms.
const AppName = "Hydrate"

// Set enables or disables the login registration.
func Set(enabled bool) error {
	if enabled {
		return enable()
	}
	return disable()
}

// IsEnabled reports whether the login registration exists for the current
// executable.
func IsEnabled() bool {
	return isEnabled()
}

// launchCommand returns the quoted command line that launches the current
// executable.
func launchCommand() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable path: %w", err)
	}
	return fmt.Sprintf("%q", exe), nil
}

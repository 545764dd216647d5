package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func agentLabel() string {
	return "app." + strings.ToLower(AppName) + ".autostart"
}

func agentPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "Library", "LaunchAgents", agentLabel()+".plist"), nil
}

func enable() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}
	path, err := agentPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create LaunchAgents directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(launchAgentPlist(agentLabel(), exe)), 0o644); err != nil {
		return fmt.Errorf("failed to write LaunchAgent: %w", err)
	}
	return nil
}

func disable() error {
	path, err := agentPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove LaunchAgent: %w", err)
	}
	return nil
}

func isEnabled() bool {
	path, err := agentPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

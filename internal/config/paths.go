package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/workgraph/config.yml
// - macOS: ~/Library/Application Support/workgraph/config.yml
// - Windows: %APPDATA%\workgraph\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "workgraph", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .workgraph/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".workgraph", "config.yml")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".workgraph"
}

// LegacyProjectConfigPath returns the path to the legacy project-level
// JSON config file.
func LegacyProjectConfigPath() string {
	return filepath.Join(".workgraph", "config.json")
}

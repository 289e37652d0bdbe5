package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks configuration values and returns the first problem
// found, phrased so the user knows how to fix it.
func Validate(cfg *Configuration) error {
	if cfg.TopPaths < 1 {
		return fmt.Errorf("top_paths must be at least 1, got %d", cfg.TopPaths)
	}

	switch cfg.AuditScope {
	case AuditScopeRanked, AuditScopeFull:
	default:
		return fmt.Errorf("audit_scope must be %q or %q, got %q",
			AuditScopeRanked, AuditScopeFull, cfg.AuditScope)
	}

	if cfg.Parallel < 0 {
		return fmt.Errorf("parallel must be 0 or greater, got %d", cfg.Parallel)
	}

	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, got %q", cfg.Color)
	}

	return nil
}

// ValidateYAMLSyntax checks if the YAML file has valid syntax before
// handing it to koanf, so syntax problems carry the file path. A missing
// or empty file is valid (defaults apply).
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%s: %w", path, err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

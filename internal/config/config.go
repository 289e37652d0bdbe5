// Package config provides hierarchical configuration management for
// workgraph using koanf. Configuration is loaded with priority:
// environment variables > project config (.workgraph/config.yml) > user
// config (~/.config/workgraph/config.yml) > defaults. A legacy JSON
// project config is still honored with a migration warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the workgraph CLI tool configuration.
type Configuration struct {
	// DataFile is the default snapshot path used when a command is run
	// without a file argument. Can be set via WORKGRAPH_DATA_FILE.
	DataFile string `koanf:"data_file"`

	// TopPaths is the number of ranked dependency chains kept for
	// reporting. Can be set via WORKGRAPH_TOP_PATHS.
	TopPaths int `koanf:"top_paths"`

	// AuditScope selects the timing-audit input: "ranked" audits the
	// top-K subset, "full" audits every enumerated chain.
	AuditScope string `koanf:"audit_scope"`

	// Parallel is the maximum number of concurrent enumeration workers.
	// 0 keeps enumeration sequential.
	Parallel int `koanf:"parallel"`

	// DateFormats is the ordered list of layouts tried on date cells.
	// Empty means the built-in defaults.
	DateFormats []string `koanf:"date_formats"`

	// Color controls report coloring: auto, always, or never.
	Color string `koanf:"color"`
}

// Audit scope values.
const (
	AuditScopeRanked = "ranked"
	AuditScopeFull   = "full"
)

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .workgraph/config.yml).
	ProjectConfigPath string
	// WarningWriter receives migration warnings (default: os.Stderr).
	WarningWriter io.Writer
	// SkipWarnings suppresses migration warnings.
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter, opts.SkipWarnings); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// getWarningWriter returns the warning writer or defaults to stderr.
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for user config: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig loads the project-level config. YAML is preferred;
// a legacy JSON config still loads with a migration warning.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer, skipWarnings bool) error {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	legacyPath := LegacyProjectConfigPath()

	switch {
	case fileExists(yamlPath):
		if err := ValidateYAMLSyntax(yamlPath); err != nil {
			return fmt.Errorf("validating YAML syntax for project config: %w", err)
		}
		if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load project config %s: %w", yamlPath, err)
		}
	case fileExists(legacyPath):
		if err := k.Load(file.Provider(legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy project config %s: %w", legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", legacyPath)
			fmt.Fprintf(warningWriter, "  Rewrite it as %s in YAML format.\n\n", yamlPath)
		}
	}
	return nil
}

// loadEnvironmentConfig loads environment variable overrides.
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.Provider("WORKGRAPH_", ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: WORKGRAPH_TOP_PATHS -> top_paths
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "WORKGRAPH_"))
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

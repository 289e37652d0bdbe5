package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# Workgraph Configuration
# Project config lives at .workgraph/config.yml, user config at
# ~/.config/workgraph/config.yml. Environment variables use the
# WORKGRAPH_ prefix (e.g. WORKGRAPH_TOP_PATHS=50).

data_file: ""                # Default snapshot file (CSV export or YAML fixture)
top_paths: 20                # Ranked dependency chains kept for reporting
audit_scope: ranked          # Timing-audit input: ranked | full
parallel: 0                  # Concurrent enumeration workers (0 = sequential)
color: auto                  # Report coloring: auto | always | never

# Ordered date layouts tried on each date cell (Go reference time).
# Empty list means the built-in defaults.
date_formats: []
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"data_file": "",
		// top_paths: reporting keeps the 20 most recent chains by
		// latest target date unless overridden.
		"top_paths": 20,
		// audit_scope: the auditor consumes the ranked subset by
		// default; "full" audits every enumerated chain instead.
		"audit_scope": AuditScopeRanked,
		// parallel: sequential enumeration unless explicitly raised.
		"parallel":     0,
		"date_formats": []string{},
		"color":        "auto",
	}
}

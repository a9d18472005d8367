package config

import "github.com/fenilsonani/tidyfiles/internal/organizer"

// GetDefault returns the default configuration
func GetDefault() *Config {
	return &Config{
		DataDir:          "", // platform default
		MinTokenLength:   organizer.DefaultMinTokenLength,
		MinGroupSize:     organizer.DefaultMinGroupSize,
		MaxGroups:        organizer.DefaultMaxGroups,
		TokenCountPolicy: string(organizer.PerFile),
		NameModeDenylist: false,
		DryRun:           false,
		ProtectedPaths:   []string{},
		LogLevel:         "warn",
		OutputFormat:     "summary",
	}
}

// GetExampleConfig returns an example configuration with comments
func GetExampleConfig() string {
	return `# TidyFiles Configuration File
# Location: ~/.config/tidyfiles/config.yaml

# Directory holding the optional ignoreTokens, filetypes and dangerousExts
# tables (.json, .yaml or .toml). A ./data directory in the working directory
# is searched first. Leave empty for ~/.config/tidyfiles/data.
data_dir: ""

# Name detection
min_token_length: 4             # shorter tokens never become folders
min_group_size: 2               # files needed before a folder is created
max_groups: 10                  # most frequent tokens considered per run
token_count_policy: per_file    # per_file or per_occurrence

# Also skip executables and scripts when organizing by name
name_mode_denylist: false

# Show what would be moved without touching anything
dry_run: false

# Extra directories that are never organized (absolute paths).
# System directories are always protected.
protected_paths: []

# debug, info, warn or error
log_level: warn

# summary, table, json or yaml
output_format: summary
`
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/tidyfiles/internal/logging"
	"github.com/fenilsonani/tidyfiles/internal/organizer"
	"github.com/fenilsonani/tidyfiles/internal/platform"
	"github.com/fenilsonani/tidyfiles/internal/reporter"
)

// Config represents the application configuration
type Config struct {
	DataDir          string   `yaml:"data_dir"` // where ignoreTokens/filetypes/dangerousExts live
	MinTokenLength   int      `yaml:"min_token_length"`
	MinGroupSize     int      `yaml:"min_group_size"`
	MaxGroups        int      `yaml:"max_groups"`
	TokenCountPolicy string   `yaml:"token_count_policy"` // per_file or per_occurrence
	NameModeDenylist bool     `yaml:"name_mode_denylist"`
	DryRun           bool     `yaml:"dry_run"`
	ProtectedPaths   []string `yaml:"protected_paths"`
	LogLevel         string   `yaml:"log_level"`
	OutputFormat     string   `yaml:"output_format"`
}

// Load loads configuration from a file
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields missing from the file keep their defaults
	config := GetDefault()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MinTokenLength < 1 {
		return fmt.Errorf("min_token_length must be >= 1")
	}
	if c.MinGroupSize < 2 {
		return fmt.Errorf("min_group_size must be >= 2")
	}
	if c.MaxGroups < 1 {
		return fmt.Errorf("max_groups must be >= 1")
	}

	if _, err := organizer.ParseCountPolicy(c.TokenCountPolicy); err != nil {
		return err
	}

	if c.LogLevel != "" && !logging.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	if _, err := reporter.ParseFormat(c.OutputFormat); err != nil {
		return err
	}

	// Validate protected paths are absolute
	for _, path := range c.ProtectedPaths {
		if !filepath.IsAbs(path) {
			return fmt.Errorf("protected path must be absolute: %s", path)
		}
	}

	return nil
}

// ResolveDataDir returns the data directory with "~" expanded, or the
// platform default when none is configured
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir == "" {
		return platform.DefaultDataDir()
	}
	return platform.ExpandHome(c.DataDir)
}

// OrganizerOptions converts the configuration to organizer options.
// Call Validate first; an unknown policy falls back to per-file counting.
func (c *Config) OrganizerOptions() organizer.Options {
	policy, err := organizer.ParseCountPolicy(c.TokenCountPolicy)
	if err != nil {
		policy = organizer.PerFile
	}

	return organizer.Options{
		Rank: organizer.RankOptions{
			MinTokenLength: c.MinTokenLength,
			MinGroupSize:   c.MinGroupSize,
			MaxGroups:      c.MaxGroups,
			Policy:         policy,
		},
		DryRun:           c.DryRun,
		NameModeDenylist: c.NameModeDenylist,
		ProtectedPaths:   append([]string(nil), c.ProtectedPaths...),
	}
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	configDir, err := platform.GetUserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, platform.AppName, "config.yaml"), nil
}

// EnsureConfigExists creates a default config file if it doesn't exist
func EnsureConfigExists() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
			return "", fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(configPath, []byte(GetExampleConfig()), 0644); err != nil {
			return "", fmt.Errorf("failed to write config file: %w", err)
		}
	}

	return configPath, nil
}

package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/unimelb-cmce-10002/group-generator/internal/logging"
)

// Config represents the complete group-generator configuration
type Config struct {
	Assign     AssignConfig     `mapstructure:"assign"`
	Validation ValidationConfig `mapstructure:"validation"`
	Paths      PathsConfig      `mapstructure:"paths"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// AssignConfig controls how students are dealt into groups
type AssignConfig struct {
	// Seed drives the shuffle. It is a fixed literal by default so two runs
	// on the same roster agree; change it deliberately, never implicitly.
	Seed int64 `mapstructure:"seed"`
	// PreferredSize is the group size the packer maximizes (default: 4)
	PreferredSize int `mapstructure:"preferred_size"`
	// MinimumSize is the smallest group the packer may produce (default: 3)
	MinimumSize int `mapstructure:"minimum_size"`
	// LabelPrefix, when set, stamps each student with "<prefix> Group <id>"
	LabelPrefix string `mapstructure:"label_prefix"`
}

// ValidationConfig controls the post-assignment size check
type ValidationConfig struct {
	// MinimumSize is the smallest acceptable group membership (default: 3)
	MinimumSize int `mapstructure:"minimum_size"`
	// AllowedSizes is the exact set of acceptable counts (default: [3, 4]).
	// An empty list disables the set check and leaves only the minimum.
	AllowedSizes []int `mapstructure:"allowed_sizes"`
}

// PathsConfig controls where group-generator reads and writes files
type PathsConfig struct {
	// Overrides is the YAML override table mapping student IDs to tutorial
	// numbers (default: "overrides.yaml"; a missing file is fine).
	Overrides string `mapstructure:"overrides"`
	// LogFile is where the JSON run log goes. Empty means stderr.
	LogFile string `mapstructure:"log_file"`
}

// LoggingConfig controls run logging behavior
type LoggingConfig struct {
	// Enabled controls whether run logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	rotation := logging.DefaultRotationConfig()

	return &Config{
		Assign: AssignConfig{
			Seed:          10002, // course code; any fixed literal works
			PreferredSize: 4,
			MinimumSize:   3,
			LabelPrefix:   "",
		},
		Validation: ValidationConfig{
			MinimumSize:  3,
			AllowedSizes: []int{3, 4},
		},
		Paths: PathsConfig{
			Overrides: "overrides.yaml",
			LogFile:   "", // Empty means stderr
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Assign defaults
	viper.SetDefault("assign.seed", defaults.Assign.Seed)
	viper.SetDefault("assign.preferred_size", defaults.Assign.PreferredSize)
	viper.SetDefault("assign.minimum_size", defaults.Assign.MinimumSize)
	viper.SetDefault("assign.label_prefix", defaults.Assign.LabelPrefix)

	// Validation defaults
	viper.SetDefault("validation.minimum_size", defaults.Validation.MinimumSize)
	viper.SetDefault("validation.allowed_sizes", defaults.Validation.AllowedSizes)

	// Paths defaults
	viper.SetDefault("paths.overrides", defaults.Paths.Overrides)
	viper.SetDefault("paths.log_file", defaults.Paths.LogFile)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "group-generator")
	}
	// Fall back to ~/.config/group-generator
	home, err := os.UserHomeDir()
	if err != nil {
		return ".group-generator"
	}
	return filepath.Join(home, ".config", "group-generator")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

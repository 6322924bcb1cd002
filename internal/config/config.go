// Package config loads and validates the server configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type (
	// Config is the full configuration for the server and the convert CLI.
	Config struct {
		Root              string        `yaml:"root"`
		FollowSymlinks    bool          `yaml:"follow_symlinks"`
		IgnoredPatterns   []string      `yaml:"ignored_patterns"`
		AllowedExtensions []string      `yaml:"allowed_extensions"`
		Log               LogConfig     `yaml:"log"`
		Preview           PreviewConfig `yaml:"preview"`
	}

	// LogConfig controls CLI logging.
	LogConfig struct {
		Verbose bool `yaml:"verbose"`
	}

	// PreviewConfig holds defaults for the convert subcommand.
	PreviewConfig struct {
		MaxDimension int `yaml:"max_dimension"`
		Quality      int `yaml:"quality"`
	}
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Preview: PreviewConfig{
			MaxDimension: 0,
			Quality:      85,
		},
	}
}

// DefaultPath returns the user-level configuration file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, "mediavault-mcp", "config.yaml"), nil
}

// Load reads the configuration file at path, or the default location when
// path is empty. File values overlay the defaults. A missing file at the
// default location yields the defaults; a missing explicit file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %s - %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %s - %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate reports every configuration problem at once.
func (c Config) Validate() error {
	var errs []string

	if c.Preview.Quality < 1 || c.Preview.Quality > 100 {
		errs = append(errs, fmt.Sprintf("preview.quality must be between 1 and 100, got %d", c.Preview.Quality))
	}
	if c.Preview.MaxDimension < 0 {
		errs = append(errs, fmt.Sprintf("preview.max_dimension must not be negative, got %d", c.Preview.MaxDimension))
	}
	if c.Root != "" && strings.TrimSpace(c.Root) == "" {
		errs = append(errs, "root must not be blank")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

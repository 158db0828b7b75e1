package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/linehop/internal/jump"
	"github.com/dshills/linehop/internal/pattern"
)

// EnvConfigPath overrides the default config file location when set.
const EnvConfigPath = "LINEHOP_CONFIG"

// Search holds the settings that drive pattern compilation and hint
// labels.
type Search struct {
	// SmartCase folds searches to case-insensitive unless the pattern
	// starts with an uppercase letter.
	SmartCase bool `toml:"smart_case"`

	// IgnoreCase forces case-insensitive searches when SmartCase is off.
	IgnoreCase bool `toml:"ignore_case"`

	// AccentFold also matches accent-folded spellings of plain ASCII
	// patterns.
	AccentFold bool `toml:"accent_fold"`

	// Keys is the hint label alphabet.
	Keys string `toml:"keys"`
}

// Config is the root configuration document.
type Config struct {
	Search Search `toml:"search"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: Search{
			SmartCase: true,
			Keys:      jump.DefaultKeys,
		},
	}
}

// DefaultPath returns the config file location: $LINEHOP_CONFIG if set,
// otherwise linehop/config.toml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "linehop", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error; the
// defaults are returned unchanged. An empty path loads DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Options returns the jump options this configuration selects.
func (c *Config) Options() jump.Options {
	opts := jump.Options{
		CaseInsensitive: c.Search.IgnoreCase,
		SmartCase:       c.Search.SmartCase,
	}
	if c.Search.AccentFold {
		opts.Mappings = pattern.AccentFolding{}
	}
	return opts
}

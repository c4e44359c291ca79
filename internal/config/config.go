package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Game struct {
		DefaultMode string `yaml:"default_mode"`
		QuickSeed   int64  `yaml:"quick_seed"`
	} `yaml:"game"`
	Save struct {
		Directory       string `yaml:"directory"`
		Plain           bool   `yaml:"plain"` // write saves without numeric encoding
		AutosaveSeconds int    `yaml:"autosave_seconds"`
	} `yaml:"save"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SAVE_DIR"); v != "" {
		cfg.Save.Directory = v
	}
	if v := os.Getenv("AUTOSAVE_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Save.AutosaveSeconds = n
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DEFAULT_MODE"); v != "" {
		cfg.Game.DefaultMode = v
	}

	// Defaults
	if cfg.Game.DefaultMode == "" {
		cfg.Game.DefaultMode = string(ModeUnlimited)
	}
	if cfg.Game.QuickSeed == 0 {
		cfg.Game.QuickSeed = 35042
	}
	if cfg.Save.Directory == "" {
		cfg.Save.Directory = "data/saves"
	}
	if cfg.Save.AutosaveSeconds == 0 {
		cfg.Save.AutosaveSeconds = 30
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/cryptogame.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Save.Directory == "" {
		return fmt.Errorf("save.directory is required")
	}
	if c.Save.AutosaveSeconds < 0 {
		return fmt.Errorf("save.autosave_seconds must not be negative")
	}
	if _, err := SettingsFor(Mode(c.Game.DefaultMode)); err != nil {
		return fmt.Errorf("game.default_mode: %w", err)
	}
	return nil
}

// Package config loads and saves BudgetPilot configuration and the local
// session identity.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration, TOML encoded.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig controls data location and money formatting.
type GeneralConfig struct {
	// DataDir overrides where the database and session live.
	DataDir  string `toml:"data_dir"`
	Currency string `toml:"currency"`
}

// AppearanceConfig controls the TUI look.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		General:    GeneralConfig{Currency: "€"},
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
	}
}

// ConfigDir returns the directory holding config.toml.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetpilot")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".budgetpilot"
	}
	return filepath.Join(home, ".config", "budgetpilot")
}

// Path returns the config file path.
func Path() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Exists reports whether a config file has been written.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DataDir resolves where the database and session file live.
func (c *Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetpilot")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".budgetpilot"
	}
	return filepath.Join(home, ".local", "share", "budgetpilot")
}

// DBPath is the SQLite database location.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir(), "budget.db")
}

// Load reads the config file, falling back to defaults when absent.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.General.Currency == "" {
		cfg.General.Currency = "€"
	}
	return cfg, nil
}

// Save writes the config file, creating the directory as needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

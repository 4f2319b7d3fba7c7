package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"prodtable/internal/domain"
)

// DefaultFileName is looked up in the working directory when no path is given
const DefaultFileName = ".prodtable.toml"

// Config represents the application configuration
type Config struct {
	Version int         `toml:"version"`
	Catalog string      `toml:"catalog"` // path to a catalog file, empty for the built-in one
	UI      UISettings  `toml:"ui"`
	Log     LogSettings `toml:"log"`
}

// UISettings holds the initial state of the table controls
type UISettings struct {
	Search     string `toml:"search"`
	StockOnly  bool   `toml:"stock_only"`
	SortColumn string `toml:"sort_column"`
	SortOrder  string `toml:"sort_order"`
}

// LogSettings controls where diagnostics go; the terminal belongs to the UI.
// An empty File disables logging unless --verbose is given.
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UI: UISettings{
			SortColumn: domain.ColumnName.String(),
			SortOrder:  domain.OrderNone.String(),
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// relative catalog paths are resolved against the config location
	if cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(filepath.Dir(path), cfg.Catalog)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as TOML
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	if _, err := domain.ParseColumn(c.UI.SortColumn); err != nil {
		return fmt.Errorf("ui.sort_column: %w", err)
	}
	if _, err := domain.ParseOrder(c.UI.SortOrder); err != nil {
		return fmt.Errorf("ui.sort_order: %w", err)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	return nil
}

// SortColumn returns the configured initial sort column
func (c *Config) SortColumn() domain.Column {
	col, _ := domain.ParseColumn(c.UI.SortColumn)
	return col
}

// SortOrder returns the configured initial sort order
func (c *Config) SortOrder() domain.Order {
	order, _ := domain.ParseOrder(c.UI.SortOrder)
	return order
}

package config

import (
	"github.com/pelletier/go-toml/v2"
)

// Config is the complete application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging"`
	UI      UIConfig      `mapstructure:"ui" toml:"ui"`
	Scan    ScanConfig    `mapstructure:"scan" toml:"scan"`
	Input   InputConfig   `mapstructure:"input" toml:"input"`
	Delete  DeleteConfig  `mapstructure:"delete" toml:"delete"`
}

// LoggingConfig controls the log output.
type LoggingConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error or disabled.
	Level string `mapstructure:"level" toml:"level"`

	// Format is "console" or "json".
	Format string `mapstructure:"format" toml:"format"`

	// File is the log file path. Empty disables logging.
	File string `mapstructure:"file" toml:"file"`
}

// UIConfig controls the dashboard layout.
type UIConfig struct {
	// MinWidth is the narrowest usable terminal, in columns.
	MinWidth int `mapstructure:"min_width" toml:"min_width"`

	// MinHeight is the shortest usable terminal, in rows.
	MinHeight int `mapstructure:"min_height" toml:"min_height"`

	// Columns is the number of entries per row in the grid.
	Columns int `mapstructure:"columns" toml:"columns"`

	// MaxZoom is the highest zoom level.
	MaxZoom int `mapstructure:"max_zoom" toml:"max_zoom"`
}

// ScanConfig controls directory listing.
type ScanConfig struct {
	// Ignore holds glob patterns of entry names to leave out.
	Ignore []string `mapstructure:"ignore" toml:"ignore"`

	// Workers is the number of directories sized concurrently.
	Workers int `mapstructure:"workers" toml:"workers"`
}

// InputConfig controls key handling.
type InputConfig struct {
	// KeymapFile is an optional TOML file of extra chord aliases.
	KeymapFile string `mapstructure:"keymap_file" toml:"keymap_file"`

	// WatchKeymap reloads KeymapFile whenever it changes on disk.
	WatchKeymap bool `mapstructure:"watch_keymap" toml:"watch_keymap"`

	// RedrawOnModeChange renders after every action that changes the mode.
	RedrawOnModeChange bool `mapstructure:"redraw_on_mode_change" toml:"redraw_on_mode_change"`
}

// DeleteConfig controls file deletion.
type DeleteConfig struct {
	// DryRun logs deletions instead of performing them.
	DryRun bool `mapstructure:"dry_run" toml:"dry_run"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		UI: UIConfig{
			MinWidth:  50,
			MinHeight: 15,
			Columns:   4,
			MaxZoom:   5,
		},
		Scan: ScanConfig{
			Ignore:  []string{},
			Workers: 4,
		},
		Input: InputConfig{
			WatchKeymap:        true,
			RedrawOnModeChange: true,
		},
		Delete: DeleteConfig{
			DryRun: true,
		},
	}
}

// TOML encodes the configuration in config file syntax.
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}

// Package config handles configuration loading and defaults.
package config

// Default values.
const (
	DefaultDataDir  = "~/.taskpad"
	DefaultFilter   = "all"
	DefaultTheme    = "light"
	DefaultLogLevel = "warn"

	// DataFileName is the bbolt file created inside the data dir.
	DataFileName = "taskpad.db"
)

// Config holds the full configuration for taskpad.
type Config struct {
	// DataDir is where the persistence file lives.
	DataDir string `toml:"data_dir"`

	// Filter is the filter active at startup (all, active, completed).
	// The filter chosen at runtime is transient and never written back.
	Filter string `toml:"default_filter"`

	// Theme is the mode used when no theme has been persisted yet
	// (light or dark).
	Theme string `toml:"theme"`

	// Logging
	LogLevel string `toml:"log_level"`

	// DataFile is the resolved persistence file path (computed).
	DataFile string `toml:"-"`
}

// DarkDefault reports whether the configured default theme is dark.
func (c *Config) DarkDefault() bool {
	return c.Theme == "dark"
}

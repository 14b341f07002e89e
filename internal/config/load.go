package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.taskpad/taskpad.toml or OS config dir)
// 3. Project config file (taskpad.toml or .taskpad.toml in cwd)
// 4. Environment variables (TASKPAD_*)
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	if path := findProjectConfigFile(); path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	loadFromEnv(cfg)

	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalize(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

func setDefaults(cfg *Config) {
	cfg.DataDir = DefaultDataDir
	cfg.Filter = DefaultFilter
	cfg.Theme = DefaultTheme
	cfg.LogLevel = DefaultLogLevel
}

func loadConfigFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKPAD_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TASKPAD_FILTER"); v != "" {
		cfg.Filter = v
	}
	if v := os.Getenv("TASKPAD_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TASKPAD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory holding the persistence file")
	fs.StringVar(&cfg.Filter, "filter", cfg.Filter, "Startup filter (all|active|completed)")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Default theme when none is saved (light|dark)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	return fs.Parse(args)
}

func finalize(cfg *Config) error {
	cfg.DataDir = expandPath(cfg.DataDir)
	if cfg.DataDir == "" {
		return fmt.Errorf("data dir is empty")
	}

	switch cfg.Theme {
	case "light", "dark":
	default:
		return fmt.Errorf("invalid theme %q, must be light or dark", cfg.Theme)
	}

	cfg.DataFile = filepath.Join(cfg.DataDir, DataFileName)
	return nil
}

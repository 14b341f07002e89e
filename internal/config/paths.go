package config

import (
	"os"
	"path/filepath"
	"strings"
)

// expandPath expands a leading ~ and environment variables in paths.
func expandPath(p string) string {
	if p == "" {
		return p
	}

	expanded := os.ExpandEnv(p)
	if expanded == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return home
	}
	if strings.HasPrefix(expanded, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return expanded
		}
		return filepath.Join(home, expanded[2:])
	}
	return expanded
}

// findUserConfigFile returns the user-level config file path, or ""
// if none exists. ~/.taskpad/taskpad.toml wins over the OS config dir.
func findUserConfigFile() string {
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".taskpad", "taskpad.toml")
		if fileExists(candidate) {
			return candidate
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(configDir, "taskpad", "taskpad.toml")
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// findProjectConfigFile returns a config file in the current directory,
// or "" if none exists.
func findProjectConfigFile() string {
	for _, name := range []string{"taskpad.toml", ".taskpad.toml"} {
		if fileExists(name) {
			return name
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

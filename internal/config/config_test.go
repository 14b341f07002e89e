package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so
// real config files never leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	work := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return work
}

func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	return Load(fs, args)
}

func TestDefaults(t *testing.T) {
	isolate(t)

	cfg, err := load(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Filter != "all" {
		t.Errorf("Filter = %s, want all", cfg.Filter)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %s, want light", cfg.Theme)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %s, want warn", cfg.LogLevel)
	}
	if filepath.Base(cfg.DataFile) != DataFileName {
		t.Errorf("DataFile = %s, want it to end in %s", cfg.DataFile, DataFileName)
	}
}

func TestProjectConfigFile(t *testing.T) {
	work := isolate(t)

	content := "default_filter = \"active\"\ntheme = \"dark\"\n"
	if err := os.WriteFile(filepath.Join(work, "taskpad.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := load(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Filter != "active" {
		t.Errorf("Filter = %s, want active", cfg.Filter)
	}
	if !cfg.DarkDefault() {
		t.Error("DarkDefault() = false, want true")
	}
}

func TestUserConfigFile(t *testing.T) {
	isolate(t)

	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".taskpad")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "taskpad.toml"), []byte("log_level = \"debug\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := load(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.LogLevel)
	}
}

func TestProjectFileOverridesUserFile(t *testing.T) {
	work := isolate(t)

	home := os.Getenv("HOME")
	dir := filepath.Join(home, ".taskpad")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "taskpad.toml"), []byte("theme = \"dark\"\n"), 0644); err != nil {
		t.Fatalf("write user config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(work, ".taskpad.toml"), []byte("theme = \"light\"\n"), 0644); err != nil {
		t.Fatalf("write project config: %v", err)
	}

	cfg, err := load(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "light" {
		t.Errorf("Theme = %s, want light (project file should win)", cfg.Theme)
	}
}

func TestEnvOverridesFiles(t *testing.T) {
	work := isolate(t)

	if err := os.WriteFile(filepath.Join(work, "taskpad.toml"), []byte("default_filter = \"active\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("TASKPAD_FILTER", "completed")

	cfg, err := load(t)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Filter != "completed" {
		t.Errorf("Filter = %s, want completed", cfg.Filter)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	isolate(t)
	t.Setenv("TASKPAD_THEME", "light")

	cfg, err := load(t, "-theme", "dark", "-data-dir", "/tmp/elsewhere")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %s, want dark", cfg.Theme)
	}
	if cfg.DataDir != "/tmp/elsewhere" {
		t.Errorf("DataDir = %s, want /tmp/elsewhere", cfg.DataDir)
	}
}

func TestInvalidThemeRejected(t *testing.T) {
	isolate(t)

	if _, err := load(t, "-theme", "sepia"); err == nil {
		t.Error("Load accepted an invalid theme")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := expandPath(tt.in); got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

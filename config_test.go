package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolateConfig points LoadConfig at an empty env file and clears every
// SNAKE_* variable for the duration of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	old := envFile
	envFile = filepath.Join(t.TempDir(), ".env")
	t.Cleanup(func() { envFile = old })
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	isolateConfig(t)
	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 50 || cfg.Height != 15 {
		t.Fatalf("arena = %dx%d, want 50x15", cfg.Width, cfg.Height)
	}
	if cfg.TickInterval != 200*time.Millisecond {
		t.Fatalf("tick = %v, want 200ms", cfg.TickInterval)
	}
	if cfg.Seed == 0 {
		t.Fatalf("seed was not filled in")
	}
}

func TestLoadConfigEnvThenFlags(t *testing.T) {
	isolateConfig(t)
	t.Setenv("SNAKE_WIDTH", "30")
	t.Setenv("SNAKE_HEIGHT", "12")
	t.Setenv("SNAKE_TICK", "150ms")
	t.Setenv("SNAKE_SEED", "99")

	cfg, err := LoadConfig([]string{"-height", "20", "-max-value", "5"})
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 30 {
		t.Fatalf("width = %d, want 30 from env", cfg.Width)
	}
	if cfg.Height != 20 {
		t.Fatalf("height = %d, want 20 from flag", cfg.Height)
	}
	if cfg.TickInterval != 150*time.Millisecond {
		t.Fatalf("tick = %v, want 150ms", cfg.TickInterval)
	}
	if cfg.Seed != 99 || cfg.MaxValue != 5 {
		t.Fatalf("seed = %d max = %d, want 99 and 5", cfg.Seed, cfg.MaxValue)
	}
}

func TestLoadConfigBadEnv(t *testing.T) {
	isolateConfig(t)
	t.Setenv("SNAKE_WIDTH", "wide")
	if _, err := LoadConfig(nil); err == nil {
		t.Fatalf("LoadConfig accepted SNAKE_WIDTH=wide")
	}
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	isolateConfig(t)
	if err := os.WriteFile(envFile, []byte("SNAKE_WIDTH=33\nSNAKE_TICK=90ms\n"), 0644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// godotenv sets the variables it loads; drop them again afterwards
	t.Cleanup(func() {
		os.Unsetenv("SNAKE_WIDTH")
		os.Unsetenv("SNAKE_TICK")
	})

	cfg, err := LoadConfig(nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 33 || cfg.TickInterval != 90*time.Millisecond {
		t.Fatalf("width = %d tick = %v, want 33 and 90ms", cfg.Width, cfg.TickInterval)
	}
}

func TestConfigValidate(t *testing.T) {
	bad := map[string]func(*Config){
		"narrow":         func(c *Config) { c.Width = 2 },
		"short":          func(c *Config) { c.Height = 1 },
		"zero tick":      func(c *Config) { c.TickInterval = 0 },
		"slow poll":      func(c *Config) { c.PollTimeout = c.TickInterval },
		"zero reward":    func(c *Config) { c.MinValue = 0 },
		"inverted range": func(c *Config) { c.MinValue, c.MaxValue = 5, 4 },
	}
	for name, mutate := range bad {
		cfg := defaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: Validate succeeded, want error", name)
		}
	}
	if err := defaultConfig().Validate(); err != nil {
		t.Fatalf("defaults: %v", err)
	}
}

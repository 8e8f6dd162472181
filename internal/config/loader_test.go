package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolate points the user and local config lookups at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return home
}

func TestLoadBreakoutEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded YAML and DefaultBreakoutConfig() disagree:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestLoadBreakoutCustomPathPartial(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ball:\n  speed: 10\ntiming:\n  tick_rate: 60\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}

	if cfg.Ball.Speed != 10 {
		t.Errorf("Ball.Speed = %v, expected 10", cfg.Ball.Speed)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("Timing.TickRate = %d, expected 60", cfg.Timing.TickRate)
	}
	// Untouched keys keep their defaults
	if cfg.Paddle.Width != 100 || cfg.Blocks.Columns != 32 {
		t.Errorf("partial file should keep defaults, got paddle %d columns %d", cfg.Paddle.Width, cfg.Blocks.Columns)
	}
}

func TestLoadBreakoutCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := LoadBreakout(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBreakout(bad); err == nil {
		t.Error("expected error for malformed custom file")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("paddle:\n  width: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBreakout(invalid)
	if err == nil || !strings.Contains(err.Error(), "paddle width") {
		t.Errorf("expected paddle width validation error, got %v", err)
	}
}

func TestLoadBreakoutSearchOrder(t *testing.T) {
	home := isolate(t)

	// Local file only
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), []byte("ball:\n  speed: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Ball.Speed != 12 {
		t.Errorf("local config should be used, Ball.Speed = %v", cfg.Ball.Speed)
	}

	// User file wins over the local one
	userDir := filepath.Join(home, ".breakout", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, ConfigFile), []byte("ball:\n  speed: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadBreakout("")
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Ball.Speed != 9 {
		t.Errorf("user config should win, Ball.Speed = %v", cfg.Ball.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BreakoutConfig)
		ok     bool
	}{
		{"defaults", func(*BreakoutConfig) {}, true},
		{"zero play area", func(c *BreakoutConfig) { c.PlayArea.Width = 0 }, false},
		{"negative ball", func(c *BreakoutConfig) { c.Ball.Height = -1 }, false},
		{"zero speed", func(c *BreakoutConfig) { c.Ball.Speed = 0 }, false},
		{"paddle too wide", func(c *BreakoutConfig) { c.Paddle.Width = 801 }, false},
		{"grid too wide", func(c *BreakoutConfig) { c.Blocks.Columns = 33 }, false},
		{"grid reaches paddle", func(c *BreakoutConfig) { c.Blocks.Rows = 30 }, false},
		{"no blocks", func(c *BreakoutConfig) { c.Blocks.Rows = 0 }, false},
		{"zero tick rate", func(c *BreakoutConfig) { c.Timing.TickRate = 0 }, false},
		{"negative delay", func(c *BreakoutConfig) { c.Timing.GameOverDelayMS = -1 }, false},
		{"no delay", func(c *BreakoutConfig) { c.Timing.GameOverDelayMS = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestGameOverTicks(t *testing.T) {
	tests := []struct {
		rate, ms, want int
	}{
		{30, 2000, 60},
		{60, 2000, 120},
		{30, 1010, 31}, // rounded up
		{30, 0, 0},
		{0, 2000, 0},
	}

	for _, tc := range tests {
		timing := TimingConfig{TickRate: tc.rate, GameOverDelayMS: tc.ms}
		if got := timing.GameOverTicks(); got != tc.want {
			t.Errorf("GameOverTicks(%d Hz, %d ms) = %d, expected %d", tc.rate, tc.ms, got, tc.want)
		}
	}

	if d := DefaultBreakoutConfig().Timing.GameOverDelay(); d != 2*time.Second {
		t.Errorf("GameOverDelay() = %v, expected 2s", d)
	}
}

func TestMarshalRoundTripsThroughLoader(t *testing.T) {
	isolate(t)

	cfg := DefaultBreakoutConfig()
	cfg.Ball.Direction = 135
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "dump.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("dumped config did not load back:\n%+v\n%+v", loaded, cfg)
	}
}

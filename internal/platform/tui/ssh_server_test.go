package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("default under home", func(t *testing.T) {
		got, err := resolveHostKeyPath("")
		if err != nil {
			t.Fatalf("resolveHostKeyPath() error = %v", err)
		}
		want := filepath.Join(home, ".breakout", "host_key")
		if got != want {
			t.Errorf("resolveHostKeyPath() = %q, expected %q", got, want)
		}
		if info, err := os.Stat(filepath.Dir(got)); err != nil || !info.IsDir() {
			t.Errorf("key directory was not created: %v", err)
		}
	})

	t.Run("custom path", func(t *testing.T) {
		custom := filepath.Join(t.TempDir(), "keys", "server_key")
		got, err := resolveHostKeyPath(custom)
		if err != nil {
			t.Fatalf("resolveHostKeyPath() error = %v", err)
		}
		if got != custom {
			t.Errorf("resolveHostKeyPath() = %q, expected %q", got, custom)
		}
		if _, err := os.Stat(filepath.Dir(custom)); err != nil {
			t.Errorf("key directory was not created: %v", err)
		}
	})
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.IdleTimeout <= 0 {
		t.Error("IdleTimeout should be positive")
	}
	if err := cfg.Game.Validate(); err != nil {
		t.Errorf("default game config invalid: %v", err)
	}
}

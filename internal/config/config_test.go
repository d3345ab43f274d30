package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:8000")
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("API.Timeout = %v, want 10s", cfg.API.Timeout)
	}

	// The transient message timings mirror the web client
	if cfg.Feedback.SignupTTL != 5*time.Second {
		t.Errorf("Feedback.SignupTTL = %v, want 5s", cfg.Feedback.SignupTTL)
	}
	if cfg.Feedback.RemovalTTL != 4*time.Second {
		t.Errorf("Feedback.RemovalTTL = %v, want 4s", cfg.Feedback.RemovalTTL)
	}
	if cfg.Feedback.HighlightTTL != 2500*time.Millisecond {
		t.Errorf("Feedback.HighlightTTL = %v, want 2.5s", cfg.Feedback.HighlightTTL)
	}

	if !cfg.Board.DiscardStaleFetches {
		t.Error("Board.DiscardStaleFetches should be true by default")
	}
	if cfg.Board.Theme != "default" {
		t.Errorf("Board.Theme = %q, want %q", cfg.Board.Theme, "default")
	}

	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() should validate, got %v", errs)
	}
}

func TestLoadFromViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("api.base_url", "https://activities.example.edu")
	viper.Set("feedback.signup_ttl", "7s")
	viper.Set("board.discard_stale_fetches", false)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "https://activities.example.edu" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.Feedback.SignupTTL != 7*time.Second {
		t.Errorf("Feedback.SignupTTL = %v, want 7s", cfg.Feedback.SignupTTL)
	}
	if cfg.Feedback.RemovalTTL != 4*time.Second {
		t.Errorf("Feedback.RemovalTTL = %v, want default 4s", cfg.Feedback.RemovalTTL)
	}
	if cfg.Board.DiscardStaleFetches {
		t.Error("Board.DiscardStaleFetches should be false after override")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	SetDefaults()
	viper.Set("api.base_url", "ftp://example.com")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected validation error")
	}

	// Get falls back to defaults
	if cfg := Get(); cfg.API.BaseURL != Default().API.BaseURL {
		t.Errorf("Get() BaseURL = %q, want default", cfg.API.BaseURL)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		if got := ConfigDir(); got != filepath.Join("/tmp/xdg", "signup") {
			t.Errorf("ConfigDir() = %q", got)
		}
		if got := ConfigFile(); got != filepath.Join("/tmp/xdg", "signup", "config.yaml") {
			t.Errorf("ConfigFile() = %q", got)
		}
	})

	t.Run("falls back to home", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}
		if got := ConfigDir(); got != filepath.Join(home, ".config", "signup") {
			t.Errorf("ConfigDir() = %q", got)
		}
	})
}

func TestLoggingResolveDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	tests := []struct {
		name string
		dir  string
		want string
	}{
		{name: "empty uses config dir", dir: "", want: filepath.Join("/tmp/xdg", "signup")},
		{name: "absolute kept", dir: "/var/log/signup", want: "/var/log/signup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LoggingConfig{Dir: tt.dir}
			if got := l.ResolveDir(); got != tt.want {
				t.Errorf("ResolveDir() = %q, want %q", got, tt.want)
			}
		})
	}

	if home, err := os.UserHomeDir(); err == nil {
		l := LoggingConfig{Dir: "~/logs"}
		if got := l.ResolveDir(); got != filepath.Join(home, "logs") {
			t.Errorf("ResolveDir(~/logs) = %q", got)
		}
	}
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete signup client configuration
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Feedback FeedbackConfig `mapstructure:"feedback"`
	Board    BoardConfig    `mapstructure:"board"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// APIConfig controls how the activities service is reached
type APIConfig struct {
	// BaseURL is the scheme and host of the activities service, e.g. "http://localhost:8000".
	// Request paths (/activities, ...) are appended to it.
	BaseURL string `mapstructure:"base_url"`
	// Timeout bounds each HTTP request (default: 10s)
	Timeout time.Duration `mapstructure:"timeout"`
	// UserAgent is sent with every request
	UserAgent string `mapstructure:"user_agent"`
}

// FeedbackConfig controls how long transient messages stay visible
type FeedbackConfig struct {
	// SignupTTL is how long sign-up outcomes stay on screen (default: 5s)
	SignupTTL time.Duration `mapstructure:"signup_ttl"`
	// RemovalTTL is how long removal outcomes stay on screen (default: 4s)
	RemovalTTL time.Duration `mapstructure:"removal_ttl"`
	// HighlightTTL is how long a freshly joined activity card stays highlighted (default: 2.5s)
	HighlightTTL time.Duration `mapstructure:"highlight_ttl"`
}

// BoardConfig controls the interactive board
type BoardConfig struct {
	// Title is shown above the activities list
	Title string `mapstructure:"title"`
	// DiscardStaleFetches drops catalog responses that arrive after a newer
	// fetch was issued. When false, the last response to arrive wins.
	DiscardStaleFetches bool `mapstructure:"discard_stale_fetches"`
	// Theme is the color theme (default: "default")
	Theme string `mapstructure:"theme"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory holding signup.log. Empty means the config directory.
	// Supports ~ for home directory expansion.
	Dir string `mapstructure:"dir"`
}

// ResolveDir returns the directory the log file is written to.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return ConfigDir()
	}
	return expandHome(l.Dir)
}

func expandHome(path string) string {
	if path == "~" || (len(path) > 1 && path[:2] == "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8000",
			Timeout:   10 * time.Second,
			UserAgent: "signup-cli",
		},
		Feedback: FeedbackConfig{
			SignupTTL:    5 * time.Second,
			RemovalTTL:   4 * time.Second,
			HighlightTTL: 2500 * time.Millisecond,
		},
		Board: BoardConfig{
			Title:               "Activities",
			DiscardStaleFetches: true,
			Theme:               "default",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
			Dir:     "", // Empty means use ConfigDir()
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// API defaults
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout", defaults.API.Timeout)
	viper.SetDefault("api.user_agent", defaults.API.UserAgent)

	// Feedback defaults
	viper.SetDefault("feedback.signup_ttl", defaults.Feedback.SignupTTL)
	viper.SetDefault("feedback.removal_ttl", defaults.Feedback.RemovalTTL)
	viper.SetDefault("feedback.highlight_ttl", defaults.Feedback.HighlightTTL)

	// Board defaults
	viper.SetDefault("board.title", defaults.Board.Title)
	viper.SetDefault("board.discard_stale_fetches", defaults.Board.DiscardStaleFetches)
	viper.SetDefault("board.theme", defaults.Board.Theme)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "signup")
	}
	// Fall back to ~/.config/signup
	home, err := os.UserHomeDir()
	if err != nil {
		return ".signup"
	}
	return filepath.Join(home, ".config", "signup")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ThemesDir returns the directory holding custom theme files
func ThemesDir() string {
	return filepath.Join(ConfigDir(), "themes")
}

// Package config provides CLI commands for managing signup configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	appconfig "github.com/Iron-Ham/signup/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify signup configuration",
	Long: `View or modify signup configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  signup config set api.base_url http://school.example:8000
  signup config set feedback.signup_ttl 8s
  signup config set board.theme high-contrast

Valid keys:
  api.base_url                - Activities service URL (http or https)
  api.timeout                 - Per-request timeout (e.g. 10s)
  api.user_agent              - User-Agent header
  feedback.signup_ttl         - How long sign-up messages stay visible
  feedback.removal_ttl        - How long removal messages stay visible
  feedback.highlight_ttl      - How long a joined activity stays highlighted
  board.title                 - Heading of the board
  board.discard_stale_fetches - Ignore catalog responses overtaken by newer ones (true/false)
  board.theme                 - Color theme: default, high-contrast, mono, or
                                the name of a file in the themes directory
  logging.enabled             - Write a log file (true/false)
  logging.level               - debug, info, warn, error
  logging.dir                 - Directory of signup.log`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/signup/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(themeCmd)
}

// Register adds the config command and its subcommands to parent.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := appconfig.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "api:")
	fmt.Fprintf(out, "  base_url: %s\n", cfg.API.BaseURL)
	fmt.Fprintf(out, "  timeout: %s\n", cfg.API.Timeout)
	fmt.Fprintf(out, "  user_agent: %s\n", cfg.API.UserAgent)

	fmt.Fprintln(out, "feedback:")
	fmt.Fprintf(out, "  signup_ttl: %s\n", cfg.Feedback.SignupTTL)
	fmt.Fprintf(out, "  removal_ttl: %s\n", cfg.Feedback.RemovalTTL)
	fmt.Fprintf(out, "  highlight_ttl: %s\n", cfg.Feedback.HighlightTTL)

	fmt.Fprintln(out, "board:")
	fmt.Fprintf(out, "  title: %s\n", cfg.Board.Title)
	fmt.Fprintf(out, "  discard_stale_fetches: %v\n", cfg.Board.DiscardStaleFetches)
	fmt.Fprintf(out, "  theme: %s\n", cfg.Board.Theme)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  enabled: %v\n", cfg.Logging.Enabled)
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.ResolveDir())

	return nil
}

// keyTypes lists the settable keys and how their values are parsed.
var keyTypes = map[string]string{
	"api.base_url":                "string",
	"api.timeout":                 "duration",
	"api.user_agent":              "string",
	"feedback.signup_ttl":         "duration",
	"feedback.removal_ttl":        "duration",
	"feedback.highlight_ttl":      "duration",
	"board.title":                 "string",
	"board.discard_stale_fetches": "bool",
	"board.theme":                 "string",
	"logging.enabled":             "bool",
	"logging.level":               "string",
	"logging.dir":                 "string",
}

// parseValue converts value to the type of key.
func parseValue(key, value string) (any, error) {
	keyType, ok := keyTypes[key]
	if !ok {
		return nil, fmt.Errorf("unknown configuration key: %s\nRun 'signup config set --help' to see valid keys", key)
	}

	switch keyType {
	case "bool":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		return b, nil
	case "duration":
		d, err := time.ParseDuration(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected a duration such as 5s", key)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid value for %s: must be positive", key)
		}
		return d.String(), nil
	}

	switch key {
	case "board.theme":
		if !slices.Contains(appconfig.ValidThemes(), value) && !appconfig.CustomThemeExists(value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s, or a theme file in %s",
				key, value, strings.Join(appconfig.ValidThemes(), ", "), appconfig.ThemesDir())
		}
	case "logging.level":
		if !slices.Contains(appconfig.ValidLogLevels(), strings.ToLower(value)) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				key, value, strings.Join(appconfig.ValidLogLevels(), ", "))
		}
		value = strings.ToLower(value)
	}
	return value, nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	typedValue, err := parseValue(key, args[1])
	if err != nil {
		return err
	}

	// Ensure config directory exists
	configDir := appconfig.ConfigDir()
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.Set(key, typedValue)

	// The result must still load, e.g. a base URL without a scheme
	if _, err := appconfig.Load(); err != nil {
		return fmt.Errorf("refusing to save: %w", err)
	}

	configFile := appconfig.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)

	return nil
}

// defaultConfigContent is written by config init.
const defaultConfigContent = `# signup configuration

# Activities service
api:
  # Scheme and host; request paths are appended
  base_url: http://localhost:8000
  # Per-request timeout
  timeout: 10s
  user_agent: signup-cli

# How long transient messages stay on screen
feedback:
  signup_ttl: 5s
  removal_ttl: 4s
  # Highlight of the activity just joined
  highlight_ttl: 2.5s

# Interactive board
board:
  title: Activities
  # Ignore catalog responses that arrive after a newer request was made
  discard_stale_fetches: true
  # Options: default, high-contrast, mono, or the name of a
  # themes/<name>.yaml file next to this config
  theme: default

# Diagnostic log (signup.log)
logging:
  enabled: true
  # Options: debug, info, warn, error
  level: info
  # Empty means the config directory
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configDir := appconfig.ConfigDir()
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'signup config set' to modify values", configFile)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize signup's behavior.")

	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := appconfig.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	// Also show config search paths
	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(appconfig.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. $HOME/.config/signup/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintln(out, "\nEnvironment variables: SIGNUP_* (e.g., SIGNUP_API_BASE_URL)")

	return nil
}

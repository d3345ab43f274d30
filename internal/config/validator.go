package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "api.base_url")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidThemes returns the names of the built-in board color themes.
// The palettes live in internal/tui/styles.
func ValidThemes() []string {
	return []string{"default", "high-contrast", "mono"}
}

// CustomThemeExists reports whether ThemesDir holds a theme file for name.
// The file's contents are checked when the board loads it.
func CustomThemeExists(name string) bool {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return false
	}
	for _, ext := range []string{".yaml", ".yml"} {
		if info, err := os.Stat(filepath.Join(ThemesDir(), name+ext)); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateAPI()...)
	errors = append(errors, c.validateFeedback()...)
	errors = append(errors, c.validateBoard()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateAPI validates the APIConfig
func (c *Config) validateAPI() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.API.BaseURL)
	switch {
	case c.API.BaseURL == "":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must not be empty",
		})
	case err != nil:
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: fmt.Sprintf("is not a valid URL: %v", err),
		})
	case u.Scheme != "http" && u.Scheme != "https":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must use http or https",
		})
	case u.Host == "":
		errors = append(errors, ValidationError{
			Field:   "api.base_url",
			Value:   c.API.BaseURL,
			Message: "must include a host",
		})
	}

	if c.API.Timeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "api.timeout",
			Value:   c.API.Timeout,
			Message: "must be positive",
		})
	}

	return errors
}

// validateFeedback validates the FeedbackConfig
func (c *Config) validateFeedback() []ValidationError {
	var errors []ValidationError

	durations := []struct {
		field string
		value time.Duration
	}{
		{"feedback.signup_ttl", c.Feedback.SignupTTL},
		{"feedback.removal_ttl", c.Feedback.RemovalTTL},
		{"feedback.highlight_ttl", c.Feedback.HighlightTTL},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errors = append(errors, ValidationError{
				Field:   d.field,
				Value:   d.value,
				Message: "must be positive",
			})
		}
	}

	return errors
}

// validateBoard validates the BoardConfig
func (c *Config) validateBoard() []ValidationError {
	var errors []ValidationError

	if c.Board.Theme != "" && !slices.Contains(ValidThemes(), c.Board.Theme) && !CustomThemeExists(c.Board.Theme) {
		errors = append(errors, ValidationError{
			Field:   "board.theme",
			Value:   c.Board.Theme,
			Message: fmt.Sprintf("must be one of %s or a theme file in %s", strings.Join(ValidThemes(), ", "), ThemesDir()),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

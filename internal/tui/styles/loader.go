package styles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ThemeFile is a user color theme loaded from YAML.
type ThemeFile struct {
	// Name is the theme's display name (e.g., "School Colors")
	Name string `yaml:"name"`
	// Author is the theme creator's name (optional)
	Author string `yaml:"author,omitempty"`
	// Description provides details about the theme (optional)
	Description string `yaml:"description,omitempty"`
	// Version is the theme file format version (currently "1")
	Version string `yaml:"version"`
	// Colors defines the color palette
	Colors ThemeColors `yaml:"colors"`
}

// ThemeColors mirrors ColorPalette. Colors are hex (#RRGGBB or #RGB) or an
// ANSI color number (0-255).
type ThemeColors struct {
	// Base colors
	Primary string `yaml:"primary"`
	Muted   string `yaml:"muted"`
	Text    string `yaml:"text"`
	Border  string `yaml:"border"`

	// Optional; fall back to a base color when empty
	Success   string `yaml:"success,omitempty"`
	Error     string `yaml:"error,omitempty"`
	Info      string `yaml:"info,omitempty"`
	Highlight string `yaml:"highlight,omitempty"`
	Warning   string `yaml:"warning,omitempty"`
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

func isValidColor(color string) bool {
	if hexColorRegex.MatchString(color) {
		return true
	}
	n, err := strconv.Atoi(color)
	return err == nil && n >= 0 && n <= 255 && strconv.Itoa(n) == color
}

// LoadThemeFile loads a theme from a YAML file.
func LoadThemeFile(path string) (*ThemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var theme ThemeFile
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	if err := theme.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	return &theme, nil
}

// Validate checks that the theme file is well-formed.
func (t *ThemeFile) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}
	if t.Version != "1" {
		return fmt.Errorf("unsupported theme version: %q (supported: 1)", t.Version)
	}

	required := []struct{ name, color string }{
		{"primary", t.Colors.Primary},
		{"muted", t.Colors.Muted},
		{"text", t.Colors.Text},
		{"border", t.Colors.Border},
	}
	for _, c := range required {
		if c.color == "" {
			return fmt.Errorf("color '%s' is required", c.name)
		}
		if !isValidColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB, #RRGGBB or 0-255)", c.name, c.color)
		}
	}

	optional := []struct{ name, color string }{
		{"success", t.Colors.Success},
		{"error", t.Colors.Error},
		{"info", t.Colors.Info},
		{"highlight", t.Colors.Highlight},
		{"warning", t.Colors.Warning},
	}
	for _, c := range optional {
		if c.color != "" && !isValidColor(c.color) {
			return fmt.Errorf("color '%s' has invalid format: %s (expected #RGB, #RRGGBB or 0-255)", c.name, c.color)
		}
	}

	return nil
}

// ToPalette converts the theme file to a ColorPalette.
func (t *ThemeFile) ToPalette() *ColorPalette {
	c := t.Colors
	warning := colorOrDefault(c.Warning, c.Primary)
	return &ColorPalette{
		Primary: lipgloss.Color(c.Primary),
		Muted:   lipgloss.Color(c.Muted),
		Text:    lipgloss.Color(c.Text),
		Border:  lipgloss.Color(c.Border),

		Success: colorOrDefault(c.Success, c.Primary),
		Error:   colorOrDefault(c.Error, c.Primary),
		Info:    colorOrDefault(c.Info, c.Primary),

		Highlight: colorOrDefault(c.Highlight, string(warning)),
		Warning:   warning,
	}
}

func colorOrDefault(color, defaultColor string) lipgloss.Color {
	if color != "" {
		return lipgloss.Color(color)
	}
	return lipgloss.Color(defaultColor)
}

// customThemes stores loaded custom themes.
var customThemes = make(map[ThemeName]*ThemeFile)

// RegisterCustomTheme registers a custom theme by name.
func RegisterCustomTheme(name ThemeName, theme *ThemeFile) {
	customThemes[name] = theme
}

// GetCustomTheme returns a custom theme by name, or nil if not found.
func GetCustomTheme(name ThemeName) *ThemeFile {
	return customThemes[name]
}

// CustomThemeNames returns the names of all registered custom themes, sorted.
func CustomThemeNames() []string {
	names := make([]string, 0, len(customThemes))
	for name := range customThemes {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// ClearCustomThemes removes all registered custom themes.
// Primarily used for testing.
func ClearCustomThemes() {
	customThemes = make(map[ThemeName]*ThemeFile)
}

// DiscoverCustomThemes loads every *.yaml and *.yml file in dir and
// registers it under its file name. A missing directory has no themes.
// Invalid files and files named after a built-in theme are skipped and
// reported.
func DiscoverCustomThemes(dir string) ([]string, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading themes directory: %w", err)}
	}

	var loaded []string
	var errs []error

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		themeName, ok := ThemeFileName(name)
		if !ok {
			continue
		}

		theme, err := LoadThemeFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}

		if IsBuiltinTheme(themeName) {
			errs = append(errs, fmt.Errorf("%s: cannot override built-in theme '%s'", name, themeName))
			continue
		}

		RegisterCustomTheme(ThemeName(themeName), theme)
		loaded = append(loaded, themeName)
	}

	return loaded, errs
}

// ResolvePalette returns the palette of a built-in theme, or loads the
// theme file for name from dir. Unlike GetPalette it never consults the
// registered custom themes, so it is safe to call off the UI goroutine.
func ResolvePalette(name ThemeName, dir string) (*ColorPalette, error) {
	if IsBuiltinTheme(string(name)) {
		return GetPalette(name), nil
	}
	var lastErr error
	for _, ext := range []string{".yaml", ".yml"} {
		theme, err := LoadThemeFile(filepath.Join(dir, string(name)+ext))
		if err == nil {
			return theme.ToPalette(), nil
		}
		if !errors.Is(err, os.ErrNotExist) || lastErr == nil {
			lastErr = err
		}
	}
	return nil, fmt.Errorf("theme %s: %w", name, lastErr)
}

// ThemeFileName returns the theme name of a theme file, and false when the
// file is not a YAML file.
func ThemeFileName(file string) (string, bool) {
	for _, ext := range []string{".yaml", ".yml"} {
		if name, ok := strings.CutSuffix(file, ext); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// IsBuiltinTheme checks if a theme name is a built-in theme.
func IsBuiltinTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name)
}

// IsCustomTheme checks if a theme name is a registered custom theme.
func IsCustomTheme(name string) bool {
	_, ok := customThemes[ThemeName(name)]
	return ok
}

// ExportTheme renders a theme as YAML, ready to be copied into the themes
// directory and edited.
func ExportTheme(name ThemeName) ([]byte, error) {
	themeFile := GetCustomTheme(name)
	if themeFile == nil {
		if !IsBuiltinTheme(string(name)) {
			return nil, fmt.Errorf("unknown theme: %s", name)
		}
		themeFile = paletteToThemeFile(string(name), GetPalette(name))
	}
	return yaml.Marshal(themeFile)
}

func paletteToThemeFile(name string, p *ColorPalette) *ThemeFile {
	return &ThemeFile{
		Name:        name,
		Description: fmt.Sprintf("Exported from built-in theme '%s'", name),
		Version:     "1",
		Colors: ThemeColors{
			Primary:   string(p.Primary),
			Muted:     string(p.Muted),
			Text:      string(p.Text),
			Border:    string(p.Border),
			Success:   string(p.Success),
			Error:     string(p.Error),
			Info:      string(p.Info),
			Highlight: string(p.Highlight),
			Warning:   string(p.Warning),
		},
	}
}

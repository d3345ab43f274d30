package styles

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ThemeName represents a named color theme.
type ThemeName string

// Available theme names.
const (
	ThemeDefault      ThemeName = "default"       // Purple/green dark theme
	ThemeHighContrast ThemeName = "high-contrast" // Pure colors on black
	ThemeMono         ThemeName = "mono"          // No color, emphasis only
)

// BuiltinThemes returns all built-in theme names.
func BuiltinThemes() []string {
	return []string{
		string(ThemeDefault),
		string(ThemeHighContrast),
		string(ThemeMono),
	}
}

// IsValidTheme checks if a theme name is a built-in or a registered custom
// theme.
func IsValidTheme(name string) bool {
	return slices.Contains(BuiltinThemes(), name) || IsCustomTheme(name)
}

// ColorPalette defines the color scheme for a theme.
// An empty color means "terminal default".
type ColorPalette struct {
	// Primary accent color (headings, focused controls)
	Primary lipgloss.Color
	// Muted color (schedules, placeholders, help text)
	Muted lipgloss.Color
	// Text color (body text)
	Text lipgloss.Color
	// Border color (card borders)
	Border lipgloss.Color

	// Feedback colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Highlight is the border of a freshly joined activity card
	Highlight lipgloss.Color
	// Warning marks activities with no spots left
	Warning lipgloss.Color
}

// DefaultPalette returns the default purple/green dark theme palette.
// All colors meet WCAG AA contrast (4.5:1) on dark backgrounds.
func DefaultPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("#A78BFA"), // Purple (violet-400)
		Muted:   lipgloss.Color("#9CA3AF"), // Gray
		Text:    lipgloss.Color("#F9FAFB"), // Light text
		Border:  lipgloss.Color("#6B7280"), // Gray-500

		Success: lipgloss.Color("#10B981"), // Green
		Error:   lipgloss.Color("#F87171"), // Red (red-400)
		Info:    lipgloss.Color("#60A5FA"), // Blue

		Highlight: lipgloss.Color("#FBBF24"), // Yellow
		Warning:   lipgloss.Color("#F59E0B"), // Amber
	}
}

// HighContrastPalette uses saturated ANSI colors for low-vision setups
// and terminals with poor true-color support.
func HighContrastPalette() *ColorPalette {
	return &ColorPalette{
		Primary: lipgloss.Color("15"), // Bright white
		Muted:   lipgloss.Color("7"),  // White
		Text:    lipgloss.Color("15"),
		Border:  lipgloss.Color("15"),

		Success: lipgloss.Color("10"), // Bright green
		Error:   lipgloss.Color("9"),  // Bright red
		Info:    lipgloss.Color("14"), // Bright cyan

		Highlight: lipgloss.Color("11"), // Bright yellow
		Warning:   lipgloss.Color("11"),
	}
}

// MonoPalette leaves every color at the terminal default. Styles still
// apply bold, italics and borders.
func MonoPalette() *ColorPalette {
	return &ColorPalette{}
}

// GetPalette returns the palette for name, falling back to the default.
func GetPalette(name ThemeName) *ColorPalette {
	switch name {
	case ThemeDefault:
		return DefaultPalette()
	case ThemeHighContrast:
		return HighContrastPalette()
	case ThemeMono:
		return MonoPalette()
	}
	if custom := GetCustomTheme(name); custom != nil {
		return custom.ToPalette()
	}
	return DefaultPalette()
}

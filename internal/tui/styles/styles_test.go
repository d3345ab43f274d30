package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Iron-Ham/signup/internal/feedback"
	"github.com/charmbracelet/lipgloss"
)

func TestBuiltinThemes(t *testing.T) {
	themes := BuiltinThemes()
	want := []string{"default", "high-contrast", "mono"}

	if len(themes) != len(want) {
		t.Fatalf("BuiltinThemes() = %v, want %v", themes, want)
	}
	for i := range want {
		if themes[i] != want[i] {
			t.Errorf("BuiltinThemes()[%d] = %q, want %q", i, themes[i], want[i])
		}
	}
}

func TestIsValidTheme(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		want  bool
	}{
		{"default theme", "default", true},
		{"high-contrast theme", "high-contrast", true},
		{"mono theme", "mono", true},
		{"invalid theme", "monokai", false},
		{"empty string", "", false},
		{"case sensitive", "Default", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidTheme(tt.theme); got != tt.want {
				t.Errorf("IsValidTheme(%q) = %v, want %v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestGetPalette(t *testing.T) {
	if GetPalette(ThemeDefault).Primary != DefaultPalette().Primary {
		t.Error("default palette mismatch")
	}
	if GetPalette(ThemeHighContrast).Error != lipgloss.Color("9") {
		t.Error("high-contrast palette mismatch")
	}
	if GetPalette(ThemeMono).Primary != "" {
		t.Error("mono palette should have no colors")
	}
	if GetPalette("unknown").Primary != DefaultPalette().Primary {
		t.Error("unknown theme should fall back to default")
	}
}

func TestFeedbackStyle(t *testing.T) {
	s := New(ThemeDefault)

	tests := []struct {
		kind feedback.Kind
		want lipgloss.TerminalColor
	}{
		{feedback.KindSuccess, s.Palette.Success},
		{feedback.KindError, s.Palette.Error},
		{feedback.KindInfo, s.Palette.Info},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := s.Feedback(tt.kind).GetForeground(); got != tt.want {
				t.Errorf("Feedback(%s) foreground = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestRendererWithoutColorEmitsPlainText(t *testing.T) {
	var buf bytes.Buffer
	s := NewWithRenderer(ThemeDefault, lipgloss.NewRenderer(&buf))

	out := s.CardName.Render("Chess Club")
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal renderer emitted escape codes: %q", out)
	}
	if out != "Chess Club" {
		t.Errorf("CardName.Render() = %q", out)
	}
}

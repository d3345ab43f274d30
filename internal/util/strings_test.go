package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{
			name:     "short string unchanged",
			input:    "Chess Club",
			maxWidth: 20,
			expected: "Chess Club",
		},
		{
			name:     "exact width unchanged",
			input:    "Chess",
			maxWidth: 5,
			expected: "Chess",
		},
		{
			name:     "long string truncated",
			input:    "Programming Class",
			maxWidth: 8,
			expected: "Program…",
		},
		{
			name:     "width of one returns ellipsis",
			input:    "Chess Club",
			maxWidth: 1,
			expected: "…",
		},
		{
			name:     "zero width disables truncation",
			input:    "Chess Club",
			maxWidth: 0,
			expected: "Chess Club",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			maxWidth: 10,
			expected: "",
		},
		{
			name:     "wide characters counted by columns",
			input:    "日本語クラブ",
			maxWidth: 7,
			expected: "日本語…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := TruncateANSI(tt.input, tt.maxWidth)
			if result != tt.expected {
				t.Errorf("TruncateANSI(%q, %d) = %q, want %q", tt.input, tt.maxWidth, result, tt.expected)
			}
		})
	}
}

func TestTruncateANSIWithStyles(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	styled := style.Render("Programming Class")

	result := TruncateANSI(styled, 10)
	if w := lipgloss.Width(result); w > 10 {
		t.Errorf("width = %d, want at most 10", w)
	}

	short := style.Render("Chess")
	if got := TruncateANSI(short, 10); got != short {
		t.Errorf("short styled string changed: %q", got)
	}
}

// Package util provides shared utility functions used across the codebase.
package util

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks text cut short by TruncateANSI.
const Ellipsis = "…"

// TruncateANSI truncates s to maxWidth visual columns, ending it with an
// ellipsis when anything was cut. Escape sequences and wide characters
// are measured correctly. A non-positive maxWidth disables truncation.
func TruncateANSI(s string, maxWidth int) string {
	if maxWidth <= 0 || lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= lipgloss.Width(Ellipsis) {
		return Ellipsis
	}
	// ansi.Truncate counts the tail in the final width
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

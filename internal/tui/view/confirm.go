package view

import (
	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/tui/styles"
)

// RenderConfirm renders the removal confirmation that replaces the form
// while it is open. prompt is shown sanitized.
func RenderConfirm(st *styles.Styles, prompt string, width int) string {
	box := st.Modal
	w := width - box.GetHorizontalBorderSize()
	if w < minCardWidth {
		w = minCardWidth
	}

	body := st.Section.Render(board.Sanitize(prompt)) + "\n\n" +
		st.HelpKey.Render("[y]") + " remove  " +
		st.HelpKey.Render("[any other key]") + " cancel"
	return box.Width(w).Render(body)
}

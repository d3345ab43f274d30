package view

import (
	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/feedback"
	"github.com/Iron-Ham/signup/internal/tui/styles"
)

// RenderFeedback renders the feedback line. A hidden channel renders as
// an empty line so the layout does not jump.
func RenderFeedback(st *styles.Styles, ch feedback.Channel) string {
	if !ch.Visible() {
		return ""
	}
	return st.Feedback(ch.Kind()).Render(board.Sanitize(ch.Text()))
}

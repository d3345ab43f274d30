package view

import (
	"strings"

	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/Iron-Ham/signup/internal/util"
)

// FormField identifies the focused field of the sign-up form.
type FormField int

const (
	FieldEmail FormField = iota
	FieldActivity
)

// FormState is everything the sign-up form depends on.
type FormState struct {
	// EmailInput is the rendered email text input.
	EmailInput string
	Options    []board.Option
	Selected   int
	Active     bool
	Focus      FormField
	Width      int
}

// RenderForm renders the sign-up form.
func RenderForm(st *styles.Styles, state FormState) string {
	box := st.FormBox
	if state.Active {
		box = st.FormBoxFocused
	}

	marker := func(f FormField) string {
		if state.Active && state.Focus == f {
			return st.HelpKey.Render("> ")
		}
		return "  "
	}

	lines := []string{
		st.Section.Render("Sign Up for an Activity"),
		marker(FieldEmail) + st.FormLabel.Render("Student Email: ") + state.EmailInput,
		marker(FieldActivity) + st.FormLabel.Render("Select Activity: ") + renderSelect(st, state),
	}

	width := state.Width - box.GetHorizontalBorderSize()
	if width < minCardWidth {
		width = minCardWidth
	}
	return box.Width(width).Render(strings.Join(lines, "\n"))
}

// selectChrome is the width taken on the selector line by everything but
// the option label: box, markers, field label and arrows.
const selectChrome = 30

// renderSelect shows the selected option between arrows, like a closed
// dropdown.
func renderSelect(st *styles.Styles, state FormState) string {
	if len(state.Options) == 0 {
		return st.Placeholder.Render(board.SelectPlaceholder)
	}
	idx := state.Selected
	if idx < 0 || idx >= len(state.Options) {
		idx = 0
	}
	opt := state.Options[idx]

	room := max(state.Width-selectChrome, minCardWidth)
	label := st.OptionSelected.Render(util.TruncateANSI(board.Sanitize(opt.Label), room))
	if opt.Placeholder() {
		label = st.Placeholder.Render(opt.Label)
	}
	if state.Active && state.Focus == FieldActivity {
		return st.Muted.Render("◀ ") + label + st.Muted.Render(" ▶")
	}
	return label
}

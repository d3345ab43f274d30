package view

import (
	"strings"

	"github.com/Iron-Ham/signup/internal/tui/keymap"
	"github.com/Iron-Ham/signup/internal/tui/styles"
)

// HelpBarState holds the state needed to render the help bar.
type HelpBarState struct {
	// Mode is the active input mode
	Mode keymap.Mode

	// Expanded shows every binding of the mode with its description
	Expanded bool
}

// HelpBarView handles rendering of help bars for different modes.
type HelpBarView struct {
	keymap *keymap.Keymap
}

// NewHelpBarView creates a new HelpBarView for km.
func NewHelpBarView(km *keymap.Keymap) *HelpBarView {
	return &HelpBarView{keymap: km}
}

// RenderHelp renders the help bar based on current state.
func (v *HelpBarView) RenderHelp(st *styles.Styles, state *HelpBarState) string {
	if state == nil {
		return ""
	}

	if state.Expanded {
		return v.renderExpanded(st, state)
	}

	var keys []string
	switch state.Mode {
	case keymap.ModeForm:
		keys = []string{
			st.HelpKey.Render("[Enter]") + " sign up",
			st.HelpKey.Render("[Tab]") + " next field",
			st.HelpKey.Render("[↑/↓]") + " activity",
			st.HelpKey.Render("[Esc]") + " back",
		}
	case keymap.ModeConfirm:
		keys = []string{
			st.HelpKey.Render("[y]") + " remove",
			st.HelpKey.Render("[any]") + " cancel",
		}
	default:
		keys = []string{
			st.HelpKey.Render("[j/k]") + " participant",
			st.HelpKey.Render("[h/l]") + " activity",
			st.HelpKey.Render("[x]") + " remove",
			st.HelpKey.Render("[s]") + " join",
			st.HelpKey.Render("[Tab]") + " form",
			st.HelpKey.Render("[r]") + " reload",
			st.HelpKey.Render("[?]") + " help",
			st.HelpKey.Render("[q]") + " quit",
		}
	}

	return st.HelpBar.Render(strings.Join(keys, "  "))
}

// renderExpanded lists every described binding of the mode, one per line.
func (v *HelpBarView) renderExpanded(st *styles.Styles, state *HelpBarState) string {
	if v.keymap == nil {
		return ""
	}

	entries := v.keymap.HelpEntries(state.Mode)
	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, st.Section.Render("Keys"))

	width := 0
	for _, e := range entries {
		width = max(width, len(e.String()))
	}
	for _, e := range entries {
		key := e.String()
		lines = append(lines, "  "+st.HelpKey.Render(key)+strings.Repeat(" ", width-len(key)+2)+e.Description)
	}
	return st.HelpBar.Render(strings.Join(lines, "\n"))
}

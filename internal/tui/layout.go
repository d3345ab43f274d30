package tui

import (
	"strings"

	"github.com/Iron-Ham/signup/internal/tui/keymap"
	"github.com/Iron-Ham/signup/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants
const (
	// ChromeHeight is the number of lines used by everything but the list:
	// title (2), form or confirmation box (5), feedback line (1) and help bar (2).
	ChromeHeight = 10

	// ExpandedHelpHeight is added to the chrome while the full help is open.
	ExpandedHelpHeight = 12

	// MinListHeight keeps at least a few list lines visible on tiny terminals.
	MinListHeight = 3
)

// CalculateListHeight returns the height of the list viewport for a
// terminal of the given height.
func CalculateListHeight(termHeight int, expandedHelp bool) int {
	h := termHeight - ChromeHeight
	if expandedHelp {
		h -= ExpandedHelpHeight
	}
	return max(h, MinListHeight)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.list.Width = width
	m.list.Height = CalculateListHeight(height, m.showHelp)
	m.email.Width = max(width-30, 10)
}

// refreshList re-renders the list content into the viewport.
func (m *Model) refreshList() {
	content, spans := view.RenderList(m.styles, view.ListState{
		Board:       m.board,
		Loaded:      m.loaded,
		LoadFailed:  m.loadFailed,
		Cursor:      m.cursor,
		Highlighted: m.highlighted,
		Width:       m.width,
	})
	m.spans = spans
	m.list.SetContent(content)
}

// centerCard scrolls the list so card idx sits in the middle of the
// viewport, as far as the content allows.
func (m *Model) centerCard(idx int) {
	if idx < 0 || idx >= len(m.spans) {
		return
	}
	offset := m.spans[idx].Center() - m.list.Height/2
	m.list.SetYOffset(max(offset, 0))
}

// ensureVisible scrolls the minimum needed to show the cursor line.
func (m *Model) ensureVisible() {
	if m.cursor.Card < 0 || m.cursor.Card >= len(m.spans) {
		return
	}
	span := m.spans[m.cursor.Card]

	// Header lines above the first participant: border, name, description,
	// schedule, availability, heading.
	line := span.Top
	if m.cursor.Row >= 0 {
		line = span.Top + 6 + m.cursor.Row
	}

	switch {
	case line < m.list.YOffset:
		m.list.SetYOffset(line)
	case line >= m.list.YOffset+m.list.Height:
		m.list.SetYOffset(line - m.list.Height + 1)
	}
	// Prefer showing the whole card when it fits
	if m.cursor.Row < 0 && span.Height <= m.list.Height && span.Top+span.Height > m.list.YOffset+m.list.Height {
		m.list.SetYOffset(span.Top + span.Height - m.list.Height)
	}
}

// View renders the board.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.styles.Title.Render(m.opts.Title))
	sections = append(sections, m.list.View())

	if m.confirmRemoval != nil {
		sections = append(sections, view.RenderConfirm(m.styles, removalPrompt(m.confirmRemoval), m.width))
	} else {
		sections = append(sections, view.RenderForm(m.styles, view.FormState{
			EmailInput: m.email.View(),
			Options:    m.board.Options,
			Selected:   m.optionIdx,
			Active:     m.mode == keymap.ModeForm,
			Focus:      m.focus,
			Width:      m.width,
		}))
	}

	sections = append(sections, view.RenderFeedback(m.styles, m.feedback))
	sections = append(sections, m.helpBar.RenderHelp(m.styles, &view.HelpBarState{
		Mode:     m.mode,
		Expanded: m.showHelp,
	}))

	return lipgloss.JoinVertical(lipgloss.Left, strings.Join(sections, "\n"))
}

package tui

import (
	"github.com/Iron-Ham/signup/internal/tui/keymap"
	"github.com/Iron-Ham/signup/internal/tui/view"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey dispatches a key press through the keymap of the active mode.
func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case keymap.ModeConfirm:
		cmd, _ := m.keymap.GetBinding(key, keymap.ModeConfirm)
		return m, m.answerRemoval(cmd == keymap.CmdConfirmYes)

	case keymap.ModeForm:
		return m.handleFormKey(key)

	default:
		return m.handleListKey(key)
	}
}

func (m Model) handleListKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(key, keymap.ModeList)
	if !ok {
		return m, nil
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		m.resize(m.width, m.height)
		m.refreshList()

	case keymap.CmdNextRow:
		m.moveRow(1)
	case keymap.CmdPrevRow:
		m.moveRow(-1)
	case keymap.CmdNextCard:
		m.moveCard(1)
	case keymap.CmdPrevCard:
		m.moveCard(-1)

	case keymap.CmdScrollHalfPageUp:
		m.list.SetYOffset(m.list.YOffset - m.list.Height/2)
	case keymap.CmdScrollHalfPageDn:
		m.list.SetYOffset(m.list.YOffset + m.list.Height/2)
	case keymap.CmdScrollToTop:
		m.list.GotoTop()
	case keymap.CmdScrollToBottom:
		m.list.GotoBottom()

	case keymap.CmdRemoveParticipant:
		m.askRemoval()

	case keymap.CmdReload:
		return m, m.fetch()

	case keymap.CmdFocusForm:
		return m, m.focusForm(view.FieldEmail)

	case keymap.CmdJoinSelected:
		// Preselect the card under the cursor and jump to the email field
		if name := m.currentCardName(); name != "" && !m.loadFailed {
			if idx := m.board.OptionIndex(name); idx > 0 {
				m.optionIdx = idx
			}
		}
		return m, m.focusForm(view.FieldEmail)
	}

	return m, nil
}

func (m Model) handleFormKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ok := m.keymap.GetBinding(key, keymap.ModeForm)
	if !ok {
		if m.focus != view.FieldEmail {
			return m, nil
		}
		var inputCmd tea.Cmd
		m.email, inputCmd = m.email.Update(key)
		return m, inputCmd
	}

	switch cmd {
	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit

	case keymap.CmdSubmit:
		return m, m.submit()

	case keymap.CmdNextField, keymap.CmdPrevField:
		next := view.FieldActivity
		if m.focus == view.FieldActivity {
			next = view.FieldEmail
		}
		return m, m.focusForm(next)

	case keymap.CmdNextOption:
		m.moveOption(1)
	case keymap.CmdPrevOption:
		m.moveOption(-1)

	case keymap.CmdFocusList:
		m.email.Blur()
		m.mode = keymap.ModeList
	}

	return m, nil
}

// focusForm enters form mode with field focused.
func (m *Model) focusForm(field view.FormField) tea.Cmd {
	m.mode = keymap.ModeForm
	m.focus = field
	if field == view.FieldEmail {
		return m.email.Focus()
	}
	m.email.Blur()
	return nil
}

// moveOption cycles the activity selector, placeholder included.
func (m *Model) moveOption(delta int) {
	n := len(m.board.Options)
	if n == 0 {
		return
	}
	m.optionIdx = ((m.optionIdx+delta)%n + n) % n
}

// moveRow walks the cursor through card headers and participant rows in
// reading order.
func (m *Model) moveRow(delta int) {
	cards := m.board.Cards
	if len(cards) == 0 || m.loadFailed {
		return
	}

	c, r := m.cursor.Card, m.cursor.Row
	if delta > 0 {
		if r+1 < len(cards[c].Rows) {
			r++
		} else if c+1 < len(cards) {
			c, r = c+1, -1
		}
	} else {
		if r >= 0 {
			r--
		} else if c > 0 {
			c = c - 1
			r = len(cards[c].Rows) - 1
		}
	}

	m.cursor = view.Cursor{Card: c, Row: r}
	m.refreshList()
	m.ensureVisible()
}

// moveCard jumps to the header of the next or previous card.
func (m *Model) moveCard(delta int) {
	if len(m.board.Cards) == 0 || m.loadFailed {
		return
	}
	c := min(max(m.cursor.Card+delta, 0), len(m.board.Cards)-1)
	m.cursor = view.Cursor{Card: c, Row: -1}
	m.refreshList()
	m.ensureVisible()
}

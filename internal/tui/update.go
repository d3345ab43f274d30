package tui

import (
	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/confirm"
	"github.com/Iron-Ham/signup/internal/errors"
	"github.com/Iron-Ham/signup/internal/feedback"
	"github.com/Iron-Ham/signup/internal/tui/keymap"
	"github.com/Iron-Ham/signup/internal/tui/msg"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/Iron-Ham/signup/internal/tui/view"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Init issues the initial catalog fetch and starts listening for
// configuration reloads.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.waitForReload())
}

// waitForReload delivers the next settings reload. It returns nil once the
// channel is closed.
func (m Model) waitForReload() tea.Cmd {
	reloads := m.opts.Reloads
	if reloads == nil {
		return nil
	}
	return func() tea.Msg {
		reload, ok := <-reloads
		if !ok {
			return nil
		}
		return reload
	}
}

func (m Model) handleReload(reload msg.ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if reload.Title != "" {
		m.opts.Title = reload.Title
	}
	if reload.Palette != nil {
		m.styles = styles.FromPalette(reload.Palette, lipgloss.DefaultRenderer())
	}
	m.logger.Info("applied configuration reload", "title", m.opts.Title, "restyled", reload.Palette != nil)
	m.refreshList()
	return m, m.waitForReload()
}

// Update handles messages and updates the model
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.resize(message.Width, message.Height)
		m.refreshList()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(message)

	case msg.CatalogLoadedMsg:
		return m.handleCatalog(message)

	case msg.SignupDoneMsg:
		return m.handleSignupDone(message)

	case msg.RemovalDoneMsg:
		return m.handleRemovalDone(message)

	case msg.HighlightClearMsg:
		if message.Generation == m.highlightGen && m.highlighted != "" {
			m.highlighted = ""
			m.refreshList()
		}
		return m, nil

	case feedback.HideMsg:
		m.feedback.Hide(message)
		return m, nil

	case msg.ConfigReloadedMsg:
		return m.handleReload(message)
	}

	// Anything else (cursor blinks, pastes) belongs to the email field
	if m.mode == keymap.ModeForm && m.focus == view.FieldEmail {
		var cmd tea.Cmd
		m.email, cmd = m.email.Update(message)
		return m, cmd
	}
	return m, nil
}

// fetch issues a catalog fetch tagged with the next sequence number.
func (m *Model) fetch() tea.Cmd {
	m.fetchSeq++
	seq := m.fetchSeq
	api, ctx := m.api, m.ctx
	m.logger.Debug("fetching catalog", "seq", seq)

	return func() tea.Msg {
		catalog, err := api.LoadCatalog(ctx)
		return msg.CatalogLoadedMsg{Seq: seq, Catalog: catalog, Err: err}
	}
}

func (m Model) handleCatalog(message msg.CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if m.opts.DiscardStaleFetches && message.Seq < m.fetchSeq {
		m.logger.Debug("discarding stale catalog", "seq", message.Seq, "latest", m.fetchSeq)
		return m, nil
	}
	if message.Seq > m.appliedSeq {
		m.appliedSeq = message.Seq
	}

	if message.Err != nil {
		// The selector keeps its previous options, like the page did
		m.logger.Error("failed to load activities", "error", message.Err, "seq", message.Seq)
		m.loaded = true
		m.loadFailed = true
		m.cursor = view.Cursor{Card: 0, Row: -1}
		if p := m.pending; p != nil && message.Seq >= p.seq {
			// No card to highlight; only the selector follows the sign-up
			m.pending = nil
			if idx := m.board.OptionIndex(p.activity); idx > 0 {
				m.optionIdx = idx
			}
		}
		m.refreshList()
		m.list.GotoTop()
		return m, nil
	}

	previous := m.currentCardName()
	m.board = board.Build(message.Catalog)
	m.loaded = true
	m.loadFailed = false
	m.optionIdx = 0
	m.restoreCursor(previous)
	m.refreshList()

	var cmd tea.Cmd
	if p := m.pending; p != nil && message.Seq >= p.seq {
		m.pending = nil
		cmd = m.selectJoined(p.activity)
	}
	return m, cmd
}

// selectJoined selects the activity just joined in the selector, brings
// its card to the middle of the list and highlights it.
func (m *Model) selectJoined(name string) tea.Cmd {
	if idx := m.board.OptionIndex(name); idx > 0 {
		m.optionIdx = idx
	}

	idx := m.board.CardIndex(name)
	if idx < 0 {
		return nil
	}
	m.cursor = view.Cursor{Card: idx, Row: -1}
	m.highlighted = name
	m.highlightGen++
	m.refreshList()
	m.centerCard(idx)

	return m.opts.Scheduler(m.opts.HighlightTTL, msg.HighlightClearMsg{Generation: m.highlightGen})
}

func (m *Model) currentCardName() string {
	if m.cursor.Card >= 0 && m.cursor.Card < len(m.board.Cards) {
		return m.board.Cards[m.cursor.Card].Name
	}
	return ""
}

// restoreCursor keeps the cursor on the card named previous when it still
// exists, and clamps it otherwise.
func (m *Model) restoreCursor(previous string) {
	if idx := m.board.CardIndex(previous); idx >= 0 && previous != "" {
		row := m.cursor.Row
		if row >= len(m.board.Cards[idx].Rows) {
			row = len(m.board.Cards[idx].Rows) - 1
		}
		m.cursor = view.Cursor{Card: idx, Row: row}
		return
	}

	card := min(m.cursor.Card, len(m.board.Cards)-1)
	m.cursor = view.Cursor{Card: max(card, 0), Row: -1}
}

// submit sends the sign-up for the current form values. The server is the
// only validator.
func (m *Model) submit() tea.Cmd {
	activityName := m.SelectedOption().Value
	email := m.email.Value()
	api, ctx := m.api, m.ctx
	m.logger.Info("signing up", "activity", activityName, "email", email)

	return func() tea.Msg {
		message, err := api.SignUp(ctx, activityName, email)
		return msg.SignupDoneMsg{Activity: activityName, Email: email, Message: message, Err: err}
	}
}

func (m Model) handleSignupDone(message msg.SignupDoneMsg) (tea.Model, tea.Cmd) {
	ttl := m.opts.SignupTTL

	if message.Err != nil {
		text := SignupNetworkFailure
		if errors.HasResponse(message.Err) {
			text = errors.DetailOr(message.Err, SignupErrorFallback)
		}
		m.logger.Error("sign-up failed", "activity", message.Activity, "email", message.Email, "error", message.Err)
		return m, m.feedback.Show(text, feedback.KindError, ttl)
	}

	show := m.feedback.Show(message.Message, feedback.KindSuccess, ttl)

	m.resetForm()
	fetch := m.fetch()
	if message.Activity != "" {
		m.pending = &pendingSelection{activity: message.Activity, seq: m.fetchSeq}
	}
	return m, tea.Batch(show, fetch)
}

// resetForm clears the email field and returns the selector to the
// placeholder.
func (m *Model) resetForm() {
	m.email.Reset()
	m.optionIdx = 0
}

// askRemoval opens the confirmation for the participant under the cursor.
func (m *Model) askRemoval() {
	if m.loadFailed || m.cursor.Card < 0 || m.cursor.Card >= len(m.board.Cards) {
		return
	}
	card := m.board.Cards[m.cursor.Card]
	if m.cursor.Row < 0 || m.cursor.Row >= len(card.Rows) {
		return
	}
	m.confirmRemoval = &pendingRemoval{activity: card.Name, email: card.Rows[m.cursor.Row].Email}
	m.mode = keymap.ModeConfirm
}

func removalPrompt(p *pendingRemoval) string {
	return confirm.RemovalPrompt(p.email, p.activity)
}

// answerRemoval closes the confirmation. Only an explicit yes sends the
// request; declining changes nothing else.
func (m *Model) answerRemoval(yes bool) tea.Cmd {
	p := m.confirmRemoval
	m.confirmRemoval = nil
	m.mode = keymap.ModeList
	if p == nil || !yes {
		return nil
	}

	api, ctx := m.api, m.ctx
	m.logger.Info("removing participant", "activity", p.activity, "email", p.email)
	return func() tea.Msg {
		message, err := api.RemoveParticipant(ctx, p.activity, p.email)
		return msg.RemovalDoneMsg{Activity: p.activity, Email: p.email, Message: message, Err: err}
	}
}

func (m Model) handleRemovalDone(message msg.RemovalDoneMsg) (tea.Model, tea.Cmd) {
	ttl := m.opts.RemovalTTL

	var show tea.Cmd
	switch {
	case message.Err == nil:
		show = m.feedback.Show(message.Message, feedback.KindInfo, ttl)
	case errors.HasResponse(message.Err):
		m.logger.Error("removal rejected", "activity", message.Activity, "email", message.Email, "error", message.Err)
		show = m.feedback.Show(errors.DetailOr(message.Err, RemovalErrorFallback), feedback.KindError, ttl)
	default:
		m.logger.Error("removal failed", "activity", message.Activity, "email", message.Email, "error", message.Err)
		show = m.feedback.Show(RemovalNetworkFailed, feedback.KindError, ttl)
	}

	// The server is the source of truth whatever the outcome
	return m, tea.Batch(show, m.fetch())
}

// Package tui implements the interactive board: the terminal counterpart
// of the sign-up page.
//
// The Model is a Bubbletea model. Update is the only place its state
// changes; network calls run as tea.Cmds and report back with the messages
// in internal/tui/msg, and timers are scheduled through a
// feedback.Scheduler so tests can fire them by hand.
package tui

import (
	"context"
	"time"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/feedback"
	"github.com/Iron-Ham/signup/internal/logging"
	"github.com/Iron-Ham/signup/internal/tui/keymap"
	"github.com/Iron-Ham/signup/internal/tui/msg"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/Iron-Ham/signup/internal/tui/view"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Fixed feedback texts.
const (
	SignupErrorFallback  = "An error occurred"
	SignupNetworkFailure = "Failed to sign up. Please try again."
	RemovalErrorFallback = "Failed to remove participant"
	RemovalNetworkFailed = "Failed to remove participant. Try again."
)

// Default dimensions used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// API is the part of the activities service the board uses.
// *api.Client implements it.
type API interface {
	LoadCatalog(ctx context.Context) (activity.Catalog, error)
	SignUp(ctx context.Context, activityName, email string) (string, error)
	RemoveParticipant(ctx context.Context, activityName, email string) (string, error)
}

// Options configure a Model.
type Options struct {
	// Title heads the board.
	Title string
	// Theme names the color theme.
	Theme string
	// SignupTTL is how long sign-up outcomes stay visible.
	SignupTTL time.Duration
	// RemovalTTL is how long removal outcomes stay visible.
	RemovalTTL time.Duration
	// HighlightTTL is how long a freshly joined card stays highlighted.
	HighlightTTL time.Duration
	// DiscardStaleFetches drops catalog results older than the newest
	// fetch issued.
	DiscardStaleFetches bool
	// Scheduler delivers timer messages. Nil means feedback.Tick.
	Scheduler feedback.Scheduler
	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger
	// BlinkCursor makes the email field cursor blink.
	BlinkCursor bool
	// Reloads delivers settings changed on disk while the board is open.
	// Nil disables live reload.
	Reloads <-chan msg.ConfigReloadedMsg
}

// DefaultOptions returns the options matching the browser client.
func DefaultOptions() Options {
	return Options{
		Title:               "Activities",
		Theme:               string(styles.ThemeDefault),
		SignupTTL:           5 * time.Second,
		RemovalTTL:          4 * time.Second,
		HighlightTTL:        2500 * time.Millisecond,
		DiscardStaleFetches: true,
	}
}

// pendingRemoval is a removal waiting for confirmation.
type pendingRemoval struct {
	activity string
	email    string
}

// pendingSelection is applied by the first fetch issued at or after seq.
type pendingSelection struct {
	activity string
	seq      uint64
}

// Model is the board state.
type Model struct {
	api    API
	ctx    context.Context
	opts   Options
	logger *logging.Logger

	keymap  *keymap.Keymap
	styles  *styles.Styles
	helpBar *view.HelpBarView

	mode     keymap.Mode
	showHelp bool
	width    int
	height   int
	quitting bool

	// Latest render
	board      board.Board
	loaded     bool
	loadFailed bool
	spans      []view.CardSpan
	cursor     view.Cursor

	// Request sequencing
	fetchSeq   uint64
	appliedSeq uint64

	// Sign-up form
	email     textinput.Model
	focus     view.FormField
	optionIdx int

	// Post sign-up selection and highlight
	pending        *pendingSelection
	highlighted    string
	highlightGen   uint64
	confirmRemoval *pendingRemoval

	list     viewport.Model
	feedback feedback.Channel
}

// NewModel creates a board backed by api.
func NewModel(api API, opts Options) Model {
	defaults := DefaultOptions()
	if opts.SignupTTL <= 0 {
		opts.SignupTTL = defaults.SignupTTL
	}
	if opts.RemovalTTL <= 0 {
		opts.RemovalTTL = defaults.RemovalTTL
	}
	if opts.HighlightTTL <= 0 {
		opts.HighlightTTL = defaults.HighlightTTL
	}
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.Scheduler == nil {
		opts.Scheduler = feedback.Tick
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}

	email := textinput.New()
	email.Placeholder = "your-email@mergington.edu"
	email.Prompt = ""
	email.CharLimit = 254
	if !opts.BlinkCursor {
		email.Cursor.SetMode(cursor.CursorStatic)
	}

	km := keymap.DefaultKeymap()
	m := Model{
		api:     api,
		ctx:     context.Background(),
		opts:    opts,
		logger:  logger.WithComponent("board"),
		keymap:  km,
		styles:  styles.New(styles.ThemeName(opts.Theme)),
		helpBar: view.NewHelpBarView(km),
		mode:    keymap.ModeList,
		width:   defaultWidth,
		height:  defaultHeight,
		cursor:  view.Cursor{Card: 0, Row: -1},
		email:   email,
		list:    viewport.New(defaultWidth, defaultHeight),
		feedback: feedback.New(
			opts.Scheduler,
		),
	}
	m.resize(defaultWidth, defaultHeight)
	m.refreshList()
	return m
}

// WithContext returns m using ctx for its requests.
func (m Model) WithContext(ctx context.Context) Model {
	if ctx != nil {
		m.ctx = ctx
	}
	return m
}

// Mode reports the active input mode.
func (m Model) Mode() keymap.Mode { return m.mode }

// Board returns the latest render.
func (m Model) Board() board.Board { return m.board }

// Feedback returns the feedback line.
func (m Model) Feedback() feedback.Channel { return m.feedback }

// Email returns the content of the email field.
func (m Model) Email() string { return m.email.Value() }

// SelectedOption returns the activity selector's current entry.
func (m Model) SelectedOption() board.Option {
	if m.optionIdx < 0 || m.optionIdx >= len(m.board.Options) {
		return board.Option{Label: board.SelectPlaceholder}
	}
	return m.board.Options[m.optionIdx]
}

// Highlighted returns the name of the highlighted card, if any.
func (m Model) Highlighted() string { return m.highlighted }

// ConfirmPrompt returns the open confirmation question, or "".
func (m Model) ConfirmPrompt() string {
	if m.confirmRemoval == nil {
		return ""
	}
	return removalPrompt(m.confirmRemoval)
}

// LoadFailed reports whether the latest fetch failed.
func (m Model) LoadFailed() bool { return m.loadFailed }

// Package styles holds the lipgloss styles of the board and the text
// listing, built from a named color palette.
package styles

import (
	"github.com/Iron-Ham/signup/internal/feedback"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the lipgloss styles built from a color palette.
type Styles struct {
	Palette *ColorPalette

	// Page
	Muted    lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Section  lipgloss.Style

	// Activity cards
	Card            lipgloss.Style
	CardHighlighted lipgloss.Style
	CardSelected    lipgloss.Style
	CardName        lipgloss.Style
	Label           lipgloss.Style
	Detail          lipgloss.Style
	SpotsLeft       lipgloss.Style
	SpotsFull       lipgloss.Style
	Participants    lipgloss.Style
	NoParticipants  lipgloss.Style
	Participant     lipgloss.Style
	ParticipantSel  lipgloss.Style
	RemoveControl   lipgloss.Style

	// Sign-up form
	FormBox        lipgloss.Style
	FormBoxFocused lipgloss.Style
	FormLabel      lipgloss.Style
	Option         lipgloss.Style
	OptionSelected lipgloss.Style
	Placeholder    lipgloss.Style

	// Feedback line
	Success lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Confirmation modal
	Modal lipgloss.Style

	// Help bar
	HelpBar lipgloss.Style
	HelpKey lipgloss.Style

	// Failure text shown in place of the list
	LoadFailed lipgloss.Style
}

// New builds the styles of theme for the default renderer.
func New(theme ThemeName) *Styles {
	return NewWithRenderer(theme, lipgloss.DefaultRenderer())
}

// NewWithRenderer builds the styles of theme bound to r, so that color
// output follows the capabilities of the writer r was created for.
func NewWithRenderer(theme ThemeName, r *lipgloss.Renderer) *Styles {
	return FromPalette(GetPalette(theme), r)
}

// FromPalette builds the styles of palette p bound to r.
func FromPalette(p *ColorPalette, r *lipgloss.Renderer) *Styles {
	base := r.NewStyle()

	s := &Styles{Palette: p}

	s.Muted = fg(base, p.Muted)
	s.Title = fg(base.Bold(true), p.Primary).MarginBottom(1)
	s.Subtitle = fg(base.Italic(true), p.Muted)
	s.Section = fg(base.Bold(true), p.Text)

	s.Card = border(base.Border(lipgloss.RoundedBorder()).Padding(0, 1), p.Border)
	s.CardHighlighted = border(base.Border(lipgloss.ThickBorder()).Padding(0, 1), p.Highlight)
	s.CardSelected = border(base.Border(lipgloss.RoundedBorder()).Padding(0, 1), p.Primary)
	s.CardName = fg(base.Bold(true), p.Primary)
	s.Label = fg(base.Bold(true), p.Text)
	s.Detail = fg(base, p.Text)
	s.SpotsLeft = fg(base, p.Success)
	s.SpotsFull = fg(base.Bold(true), p.Warning)
	s.Participants = fg(base.Bold(true), p.Muted)
	s.NoParticipants = fg(base.Italic(true), p.Muted)
	s.Participant = fg(base, p.Text).PaddingLeft(2)
	s.ParticipantSel = fg(base.Bold(true).Reverse(true), p.Primary).PaddingLeft(2)
	s.RemoveControl = fg(base, p.Error)

	s.FormBox = border(base.Border(lipgloss.NormalBorder()).Padding(0, 1), p.Border)
	s.FormBoxFocused = border(base.Border(lipgloss.NormalBorder()).Padding(0, 1), p.Primary)
	s.FormLabel = fg(base.Bold(true), p.Text)
	s.Option = fg(base, p.Text)
	s.OptionSelected = fg(base.Bold(true), p.Primary)
	s.Placeholder = fg(base.Italic(true), p.Muted)

	s.Success = fg(base.Bold(true), p.Success)
	s.Error = fg(base.Bold(true), p.Error)
	s.Info = fg(base.Bold(true), p.Info)

	s.Modal = border(base.Border(lipgloss.DoubleBorder()).Padding(1, 2), p.Error)

	s.HelpBar = fg(base, p.Muted).MarginTop(1)
	s.HelpKey = fg(base.Bold(true), p.Primary)

	s.LoadFailed = fg(base.Bold(true), p.Error)

	return s
}

// Feedback returns the style of a feedback message of kind k.
func (s *Styles) Feedback(k feedback.Kind) lipgloss.Style {
	switch k {
	case feedback.KindSuccess:
		return s.Success
	case feedback.KindError:
		return s.Error
	default:
		return s.Info
	}
}

func fg(style lipgloss.Style, c lipgloss.Color) lipgloss.Style {
	if c == "" {
		return style
	}
	return style.Foreground(c)
}

func border(style lipgloss.Style, c lipgloss.Color) lipgloss.Style {
	if c == "" {
		return style
	}
	return style.BorderForeground(c)
}

package view

import (
	"strings"

	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// LoadingText is shown until the first catalog fetch completes.
const LoadingText = "Loading activities..."

// ListState is everything the activities list depends on.
type ListState struct {
	Board       board.Board
	Loaded      bool
	LoadFailed  bool
	Cursor      Cursor
	Highlighted string
	Width       int
}

// Cursor addresses a card and optionally one of its participant rows.
type Cursor struct {
	Card int
	Row  int // -1 selects the card itself
}

// CardSpan is the vertical extent of a rendered card, in lines from the
// top of the list content.
type CardSpan struct {
	Top    int
	Height int
}

// Center returns the line at the middle of the span.
func (s CardSpan) Center() int {
	return s.Top + s.Height/2
}

// RenderList renders the list content and reports where each card landed.
func RenderList(st *styles.Styles, state ListState) (string, []CardSpan) {
	switch {
	case state.LoadFailed:
		return st.LoadFailed.Render(board.LoadFailedText), nil
	case !state.Loaded:
		return st.Subtitle.Render(LoadingText), nil
	case len(state.Board.Cards) == 0:
		return st.Subtitle.Render("No activities available"), nil
	}

	spans := make([]CardSpan, 0, len(state.Board.Cards))
	rendered := make([]string, 0, len(state.Board.Cards))
	top := 0
	for i, card := range state.Board.Cards {
		cs := CardState{
			Selected:    i == state.Cursor.Card,
			SelectedRow: -1,
			Highlighted: card.Name == state.Highlighted && state.Highlighted != "",
		}
		if cs.Selected {
			cs.SelectedRow = state.Cursor.Row
		}
		out := RenderCard(st, card, cs, state.Width)
		h := lipgloss.Height(out)
		spans = append(spans, CardSpan{Top: top, Height: h})
		rendered = append(rendered, out)
		top += h
	}

	return strings.Join(rendered, "\n"), spans
}

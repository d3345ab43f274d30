package view

import (
	"strings"

	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// minCardWidth keeps cards legible on very narrow terminals.
const minCardWidth = 20

// CardState is the selection state of one card.
type CardState struct {
	// Selected marks the card holding the list cursor.
	Selected bool
	// SelectedRow is the participant row under the cursor, or -1.
	SelectedRow int
	// Highlighted marks a card the user just joined.
	Highlighted bool
}

// RenderCard renders one activity card at the given outer width.
func RenderCard(st *styles.Styles, card board.Card, state CardState, width int) string {
	frame := st.Card
	switch {
	case state.Highlighted:
		frame = st.CardHighlighted
	case state.Selected:
		frame = st.CardSelected
	}
	inner := width - frame.GetHorizontalBorderSize()
	if inner < minCardWidth {
		inner = minCardWidth
	}
	return frame.Width(inner).Render(CardBody(st, card, state.SelectedRow))
}

// CardBody renders the inside of a card. selectedRow highlights one
// participant row and shows its removal control; pass -1 for none.
func CardBody(st *styles.Styles, card board.Card, selectedRow int) string {
	lines := []string{
		st.CardName.Render(board.Sanitize(card.Name)),
		st.Detail.Render(board.Sanitize(card.Description)),
		st.Label.Render("Schedule:") + " " + st.Detail.Render(board.Sanitize(card.Schedule)),
		st.Label.Render("Availability:") + " " + spotsStyle(st, card).Render(board.SpotsLeftText(card.SpotsLeft)),
		st.Participants.Render(board.ParticipantsHeading),
	}

	if card.Empty() {
		lines = append(lines, st.NoParticipants.PaddingLeft(2).Render(board.NoParticipantsText))
		return strings.Join(lines, "\n")
	}

	for i, row := range card.Rows {
		email := board.Sanitize(row.Email)
		if i == selectedRow {
			lines = append(lines, st.ParticipantSel.Render("• "+email)+"  "+
				st.RemoveControl.Render("[x] "+board.Sanitize(row.RemoveLabel)))
			continue
		}
		lines = append(lines, st.Participant.Render("• "+email))
	}
	return strings.Join(lines, "\n")
}

func spotsStyle(st *styles.Styles, card board.Card) lipgloss.Style {
	if card.SpotsLeft <= 0 {
		return st.SpotsFull
	}
	return st.SpotsLeft
}

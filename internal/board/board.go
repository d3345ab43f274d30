// Package board turns an activity catalog into the view model shown by
// every output surface: the interactive board, the text listing and the
// HTML export.
//
// Build is deterministic and rebuilds everything from the catalog on each
// call. Nothing is carried over between builds, so the view always
// reflects the most recent server response.
package board

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/charmbracelet/x/ansi"
)

// Fixed texts shared by every surface.
const (
	LoadFailedText      = "Failed to load activities. Please try again later."
	NoParticipantsText  = "No participants yet"
	SelectPlaceholder   = "-- Select an activity --"
	ParticipantsHeading = "Participants"
)

// Board is the rendered state of one catalog.
type Board struct {
	Cards   []Card
	Options []Option
}

// Card is one activity.
type Card struct {
	Name        string
	Description string
	Schedule    string
	Capacity    int
	SpotsLeft   int
	Rows        []Row
}

// Empty reports whether the card shows the no-participants placeholder.
func (c Card) Empty() bool {
	return len(c.Rows) == 0
}

// Row is one participant with its removal control.
type Row struct {
	Email       string
	RemoveLabel string
}

// Option is one entry in the activity selector. The placeholder has an
// empty Value.
type Option struct {
	Value string
	Label string
}

// Placeholder reports whether o is the "no selection" entry.
func (o Option) Placeholder() bool {
	return o.Value == ""
}

// Build renders catalog in server order.
func Build(catalog activity.Catalog) Board {
	activities := catalog.All()

	b := Board{
		Cards:   make([]Card, 0, len(activities)),
		Options: make([]Option, 0, len(activities)+1),
	}
	b.Options = append(b.Options, Option{Value: "", Label: SelectPlaceholder})

	for _, a := range activities {
		card := Card{
			Name:        a.Name,
			Description: a.Description,
			Schedule:    a.Schedule,
			Capacity:    a.MaxParticipants,
			SpotsLeft:   a.SpotsLeft(),
		}
		for _, email := range a.Participants {
			card.Rows = append(card.Rows, Row{
				Email:       email,
				RemoveLabel: RemoveLabel(email),
			})
		}
		b.Cards = append(b.Cards, card)
		b.Options = append(b.Options, Option{Value: a.Name, Label: a.Name})
	}

	return b
}

// CardIndex returns the index of the card whose heading is exactly name,
// or -1.
func (b Board) CardIndex(name string) int {
	for i, c := range b.Cards {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// OptionIndex returns the index of the selector entry with value name,
// or -1. The placeholder is always at index 0.
func (b Board) OptionIndex(name string) int {
	for i, o := range b.Options {
		if o.Value == name {
			return i
		}
	}
	return -1
}

// RemoveLabel is the accessible label of a participant's removal control.
func RemoveLabel(email string) string {
	return "Remove " + email
}

// SpotsLeftText formats the availability line of a card.
func SpotsLeftText(spots int) string {
	return fmt.Sprintf("%d spots left", spots)
}

// Sanitize makes server-supplied text inert on a terminal. Escape
// sequences are stripped and the remaining control and bidi-control
// characters are dropped. Printable characters, including HTML
// metacharacters, are kept as-is.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) || unicode.Is(unicode.Bidi_Control, r) {
			return -1
		}
		return r
	}, s)
}

package board

import (
	"testing"

	"github.com/Iron-Ham/signup/internal/activity"
)

func sampleCatalog() activity.Catalog {
	return activity.NewCatalog(
		activity.Activity{
			Name:            "Chess Club",
			Description:     "Learn strategies",
			Schedule:        "Fridays",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		activity.Activity{
			Name:            "Art Studio",
			Description:     "Painting",
			Schedule:        "Mondays",
			MaxParticipants: 8,
		},
		activity.Activity{
			Name:            "Overbooked",
			Description:     "More participants than seats",
			Schedule:        "Never",
			MaxParticipants: 1,
			Participants:    []string{"a@x.edu", "b@x.edu"},
		},
	)
}

func TestBuildSpotsLeft(t *testing.T) {
	catalog := sampleCatalog()
	b := Build(catalog)

	if len(b.Cards) != catalog.Len() {
		t.Fatalf("len(Cards) = %d, want %d", len(b.Cards), catalog.Len())
	}
	for _, card := range b.Cards {
		a, _ := catalog.Get(card.Name)
		want := a.MaxParticipants - len(a.Participants)
		if card.SpotsLeft != want {
			t.Errorf("%s: SpotsLeft = %d, want %d", card.Name, card.SpotsLeft, want)
		}
	}

	// Negative availability is shown as-is
	if got := b.Cards[2].SpotsLeft; got != -1 {
		t.Errorf("Overbooked SpotsLeft = %d, want -1", got)
	}
}

func TestBuildKeepsServerOrder(t *testing.T) {
	b := Build(sampleCatalog())

	wantCards := []string{"Chess Club", "Art Studio", "Overbooked"}
	for i, name := range wantCards {
		if b.Cards[i].Name != name {
			t.Errorf("Cards[%d].Name = %q, want %q", i, b.Cards[i].Name, name)
		}
	}

	if len(b.Options) != len(wantCards)+1 {
		t.Fatalf("len(Options) = %d, want %d", len(b.Options), len(wantCards)+1)
	}
	if !b.Options[0].Placeholder() || b.Options[0].Label != SelectPlaceholder {
		t.Errorf("Options[0] = %+v, want placeholder", b.Options[0])
	}
	for i, name := range wantCards {
		opt := b.Options[i+1]
		if opt.Value != name || opt.Label != name {
			t.Errorf("Options[%d] = %+v, want %q", i+1, opt, name)
		}
	}
}

func TestBuildEmptyRoster(t *testing.T) {
	b := Build(sampleCatalog())

	art := b.Cards[b.CardIndex("Art Studio")]
	if !art.Empty() {
		t.Error("Art Studio should show the placeholder")
	}
	if len(art.Rows) != 0 {
		t.Errorf("Art Studio rows = %v, want none", art.Rows)
	}

	chess := b.Cards[b.CardIndex("Chess Club")]
	if chess.Empty() {
		t.Error("Chess Club should not be empty")
	}
	if len(chess.Rows) != 2 {
		t.Fatalf("Chess Club rows = %d, want 2", len(chess.Rows))
	}
	if chess.Rows[0].RemoveLabel != "Remove michael@mergington.edu" {
		t.Errorf("RemoveLabel = %q", chess.Rows[0].RemoveLabel)
	}
}

func TestBuildEmptyCatalog(t *testing.T) {
	b := Build(activity.Catalog{})

	if len(b.Cards) != 0 {
		t.Errorf("Cards = %v, want none", b.Cards)
	}
	if len(b.Options) != 1 || !b.Options[0].Placeholder() {
		t.Errorf("Options = %v, want only the placeholder", b.Options)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	catalog := sampleCatalog()
	first := Build(catalog)
	second := Build(catalog)

	if len(first.Cards) != len(second.Cards) {
		t.Fatal("builds differ in length")
	}
	for i := range first.Cards {
		a, b := first.Cards[i], second.Cards[i]
		if a.Name != b.Name || a.SpotsLeft != b.SpotsLeft || len(a.Rows) != len(b.Rows) {
			t.Errorf("card %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestCardAndOptionIndex(t *testing.T) {
	b := Build(sampleCatalog())

	tests := []struct {
		name       string
		wantCard   int
		wantOption int
	}{
		{name: "Chess Club", wantCard: 0, wantOption: 1},
		{name: "Overbooked", wantCard: 2, wantOption: 3},
		{name: "chess club", wantCard: -1, wantOption: -1},
		{name: "", wantCard: -1, wantOption: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CardIndex(tt.name); got != tt.wantCard {
				t.Errorf("CardIndex(%q) = %d, want %d", tt.name, got, tt.wantCard)
			}
			if got := b.OptionIndex(tt.name); got != tt.wantOption {
				t.Errorf("OptionIndex(%q) = %d, want %d", tt.name, got, tt.wantOption)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Chess Club", want: "Chess Club"},
		{name: "html kept literally", input: `<script>alert("x")</script> & 'q'`, want: `<script>alert("x")</script> & 'q'`},
		{name: "color sequence", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "cursor movement", input: "a\x1b[2Jb", want: "ab"},
		{name: "window title", input: "\x1b]0;pwned\x07name", want: "name"},
		{name: "newline and bell", input: "line1\nline2\a", want: "line1line2"},
		{name: "tab becomes space", input: "a\tb", want: "a b"},
		{name: "bidi override", input: "abc\u202edef", want: "abcdef"},
		{name: "unicode kept", input: "Échecs ♟", want: "Échecs ♟"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSpotsLeftText(t *testing.T) {
	if got := SpotsLeftText(3); got != "3 spots left" {
		t.Errorf("SpotsLeftText(3) = %q", got)
	}
}

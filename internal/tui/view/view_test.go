package view

import (
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/feedback"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func testBoard() board.Board {
	return board.Build(activity.NewCatalog(
		activity.Activity{
			Name:            "Chess Club",
			Description:     "Learn strategies",
			Schedule:        "Fridays, 3:30 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		activity.Activity{
			Name:            "Art Studio",
			Description:     "Painting and drawing",
			Schedule:        "Mondays",
			MaxParticipants: 8,
		},
	))
}

func TestRenderCard(t *testing.T) {
	st := styles.New(styles.ThemeMono)
	b := testBoard()

	tests := []struct {
		name     string
		card     board.Card
		state    CardState
		contains []string
		excludes []string
	}{
		{
			name:  "participants listed",
			card:  b.Cards[0],
			state: CardState{SelectedRow: -1},
			contains: []string{
				"Chess Club", "Learn strategies", "Fridays, 3:30 PM",
				"10 spots left", board.ParticipantsHeading,
				"michael@mergington.edu", "daniel@mergington.edu",
			},
			excludes: []string{board.NoParticipantsText, "[x]"},
		},
		{
			name:     "selected row shows removal control",
			card:     b.Cards[0],
			state:    CardState{Selected: true, SelectedRow: 1},
			contains: []string{"[x] Remove daniel@mergington.edu"},
			excludes: []string{"Remove michael@mergington.edu"},
		},
		{
			name:     "empty roster",
			card:     b.Cards[1],
			state:    CardState{SelectedRow: -1},
			contains: []string{"8 spots left", board.NoParticipantsText},
			excludes: []string{"•"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(RenderCard(st, tt.card, tt.state, 80))
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("card should contain %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out, unwanted) {
					t.Errorf("card should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestRenderCardNeutralizesTerminalSequences(t *testing.T) {
	st := styles.New(styles.ThemeMono)
	b := board.Build(activity.NewCatalog(activity.Activity{
		Name:            "\x1b[2JEvil",
		Description:     "<b>bold</b>",
		MaxParticipants: 1,
	}))

	out := RenderCard(st, b.Cards[0], CardState{SelectedRow: -1}, 60)
	if strings.Contains(out, "\x1b[2J") {
		t.Error("card output contains the injected escape sequence")
	}
	if !strings.Contains(ansi.Strip(out), "<b>bold</b>") {
		t.Error("markup should be shown literally")
	}
}

func TestRenderList(t *testing.T) {
	st := styles.New(styles.ThemeMono)
	b := testBoard()

	tests := []struct {
		name      string
		state     ListState
		contains  string
		wantSpans int
	}{
		{name: "loading", state: ListState{}, contains: LoadingText},
		{name: "failed", state: ListState{Loaded: true, LoadFailed: true, Board: b}, contains: board.LoadFailedText},
		{name: "empty", state: ListState{Loaded: true}, contains: "No activities available"},
		{name: "cards", state: ListState{Loaded: true, Board: b, Width: 80}, contains: "Art Studio", wantSpans: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, spans := RenderList(st, tt.state)
			if !strings.Contains(ansi.Strip(out), tt.contains) {
				t.Errorf("list should contain %q:\n%s", tt.contains, out)
			}
			if len(spans) != tt.wantSpans {
				t.Errorf("len(spans) = %d, want %d", len(spans), tt.wantSpans)
			}
		})
	}
}

func TestRenderListSpansAreContiguous(t *testing.T) {
	st := styles.New(styles.ThemeMono)
	out, spans := RenderList(st, ListState{Loaded: true, Board: testBoard(), Width: 80, Cursor: Cursor{Row: -1}})

	if spans[0].Top != 0 {
		t.Errorf("first span starts at %d, want 0", spans[0].Top)
	}
	if spans[1].Top != spans[0].Top+spans[0].Height {
		t.Errorf("spans not contiguous: %+v", spans)
	}
	lines := strings.Count(out, "\n") + 1
	if end := spans[1].Top + spans[1].Height; end != lines {
		t.Errorf("spans end at %d, content has %d lines", end, lines)
	}

	c := spans[0].Center()
	if c <= spans[0].Top || c >= spans[0].Top+spans[0].Height {
		t.Errorf("Center() = %d outside %+v", c, spans[0])
	}
}

func TestRenderForm(t *testing.T) {
	st := styles.New(styles.ThemeMono)
	b := testBoard()

	tests := []struct {
		name     string
		state    FormState
		contains []string
		excludes []string
	}{
		{
			name:     "placeholder selected",
			state:    FormState{EmailInput: "someone@x.edu", Options: b.Options, Width: 80},
			contains: []string{"Sign Up for an Activity", "Student Email:", "someone@x.edu", board.SelectPlaceholder},
			excludes: []string{"◀"},
		},
		{
			name:     "activity focused",
			state:    FormState{Options: b.Options, Selected: 2, Active: true, Focus: FieldActivity, Width: 80},
			contains: []string{"◀", "Art Studio", "▶"},
		},
		{
			name:     "no options yet",
			state:    FormState{Width: 80},
			contains: []string{board.SelectPlaceholder},
		},
		{
			name:     "out of range falls back to placeholder",
			state:    FormState{Options: b.Options, Selected: 9, Width: 80},
			contains: []string{board.SelectPlaceholder},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(RenderForm(st, tt.state))
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("form should contain %q:\n%s", want, out)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(out, unwanted) {
					t.Errorf("form should not contain %q:\n%s", unwanted, out)
				}
			}
		})
	}
}

func TestRenderConfirm(t *testing.T) {
	st := styles.New(styles.ThemeMono)
	out := ansi.Strip(RenderConfirm(st, "Remove a@x.edu from Chess Club?", 80))

	for _, want := range []string{"Remove a@x.edu from Chess Club?", "[y]", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("confirmation should contain %q:\n%s", want, out)
		}
	}
}

func TestRenderFeedback(t *testing.T) {
	st := styles.New(styles.ThemeMono)
	ch := feedback.New(func(_ time.Duration, _ tea.Msg) tea.Cmd { return nil })

	if got := RenderFeedback(st, ch); got != "" {
		t.Errorf("hidden feedback = %q, want empty", got)
	}

	ch.Show("Signed up a@x.edu for Chess Club", feedback.KindSuccess, time.Second)
	if got := ansi.Strip(RenderFeedback(st, ch)); !strings.Contains(got, "Signed up a@x.edu for Chess Club") {
		t.Errorf("feedback = %q", got)
	}
}

func TestRenderFormTruncatesLongActivity(t *testing.T) {
	st := styles.New(styles.ThemeMono)
	b := board.Build(activity.NewCatalog(activity.Activity{
		Name:            strings.Repeat("Very Long Activity Name ", 5),
		MaxParticipants: 1,
	}))

	out := ansi.Strip(RenderForm(st, FormState{Options: b.Options, Selected: 1, Width: 60}))
	if !strings.Contains(out, "…") {
		t.Errorf("long activity name should be truncated:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 60 {
			t.Errorf("line is %d columns wide, want at most 60: %q", w, line)
		}
	}
}

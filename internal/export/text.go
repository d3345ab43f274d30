package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/Iron-Ham/signup/internal/tui/view"
	"github.com/charmbracelet/lipgloss"
)

// cardWidth is the outer width of a text card.
const cardWidth = 72

// WriteText writes catalog as styled cards. Server text is sanitized so
// it cannot inject terminal escape sequences.
func WriteText(w io.Writer, catalog activity.Catalog, opts Options) error {
	st := styles.NewWithRenderer(styles.ThemeName(opts.Theme), lipgloss.NewRenderer(w))
	b := board.Build(catalog)

	var sb strings.Builder
	if opts.Title != "" {
		sb.WriteString(st.Title.Render(board.Sanitize(opts.Title)))
		sb.WriteString("\n")
	}

	if len(b.Cards) == 0 {
		sb.WriteString(st.Subtitle.Render("No activities available"))
		sb.WriteString("\n")
	}
	for _, card := range b.Cards {
		sb.WriteString(view.RenderCard(st, card, view.CardState{SelectedRow: -1}, cardWidth))
		sb.WriteString("\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}

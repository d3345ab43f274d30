package msg

import (
	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/Iron-Ham/signup/internal/tui/styles"
)

// CatalogLoadedMsg carries the result of a catalog fetch. Seq is the
// sequence number the fetch was issued with.
type CatalogLoadedMsg struct {
	Seq     uint64
	Catalog activity.Catalog
	Err     error
}

// SignupDoneMsg carries the result of a sign-up request.
type SignupDoneMsg struct {
	Activity string
	Email    string
	Message  string
	Err      error
}

// RemovalDoneMsg carries the result of a participant removal.
type RemovalDoneMsg struct {
	Activity string
	Email    string
	Message  string
	Err      error
}

// HighlightClearMsg ends the highlight of the given generation.
type HighlightClearMsg struct {
	Generation uint64
}

// ConfigReloadedMsg carries board settings re-read after the config file
// or a theme file changed on disk. Empty fields keep the current value.
type ConfigReloadedMsg struct {
	Title   string
	Palette *styles.ColorPalette
}

// Package export writes a one-shot rendering of the activity catalog for
// the non-interactive "list" command.
//
// Three formats are supported:
//   - text: lipgloss-styled cards, colored only when the writer is a terminal
//   - json: the catalog in server order, as served by GET /activities
//   - html: a standalone page using the same element ids as the browser client
//
// All formats are built from board.Build, so every invariant of the board
// (spots left, empty roster placeholder, removal labels) holds here too.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Iron-Ham/signup/internal/activity"
	"github.com/Iron-Ham/signup/internal/errors"
)

// Format selects an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatHTML)}
}

// ParseFormat validates a format name. Empty means text.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatText, nil
	}
	if !slices.Contains(Formats(), name) {
		return "", errors.Wrapf(errors.ErrInvalidInput, "unknown format %q (want one of: %s)", name, strings.Join(Formats(), ", "))
	}
	return Format(name), nil
}

// Options tune the output.
type Options struct {
	// Title heads the text and HTML output.
	Title string
	// Theme is the color theme of the text output.
	Theme string
}

// Write renders catalog to w in format.
func Write(w io.Writer, format Format, catalog activity.Catalog, opts Options) error {
	switch format {
	case FormatText, "":
		return WriteText(w, catalog, opts)
	case FormatJSON:
		return WriteJSON(w, catalog)
	case FormatHTML:
		return WriteHTML(w, catalog, opts)
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unknown format %q", format)
	}
}

// WriteJSON writes catalog as indented JSON, keeping server order.
func WriteJSON(w io.Writer, catalog activity.Catalog) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

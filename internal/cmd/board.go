package cmd

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/signup/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive activities board",
	Long: `Open the interactive activities board.

The board lists every activity with its participants and holds the
sign-up form. Select a participant and press x to remove them; press ?
for all key bindings.

Edits to the board title or theme in the config file, and to custom
theme files, apply while the board is open.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the board needs an interactive terminal; use 'signup list' instead")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	reloads, stopWatching := watchSettings(s)
	defer stopWatching()

	s.logger.Info("opening board", "base_url", s.client.BaseURL())
	opts := boardOptions(s)
	opts.Reloads = reloads
	app := tui.New(s.client, opts)
	return app.Run(cmd.Context())
}

// boardOptions maps the configuration onto the board.
func boardOptions(s *session) tui.Options {
	return tui.Options{
		Title:               s.cfg.Board.Title,
		Theme:               s.cfg.Board.Theme,
		SignupTTL:           s.cfg.Feedback.SignupTTL,
		RemovalTTL:          s.cfg.Feedback.RemovalTTL,
		HighlightTTL:        s.cfg.Feedback.HighlightTTL,
		DiscardStaleFetches: s.cfg.Board.DiscardStaleFetches,
		Logger:              s.logger,
		BlinkCursor:         true,
	}
}

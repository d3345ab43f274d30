package cmd

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/signup/internal/board"
	"github.com/Iron-Ham/signup/internal/export"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the activities once",
	Long: `Print the activities with their schedules, availability and
participants, then exit.

Formats:
  text  cards as shown on the board (default)
  json  the catalog as returned by the service
  html  a standalone page with the same structure as the sign-up page`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("format", "f", "text", "output format: "+strings.Join(export.Formats(), ", "))
}

func runList(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	catalog, err := s.client.LoadCatalog(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), board.LoadFailedText)
		return err
	}

	return export.Write(cmd.OutOrStdout(), format, catalog, export.Options{
		Title: s.cfg.Board.Title,
		Theme: s.cfg.Board.Theme,
	})
}

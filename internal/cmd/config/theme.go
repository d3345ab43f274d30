package config

import (
	"fmt"

	appconfig "github.com/Iron-Ham/signup/internal/config"
	"github.com/Iron-Ham/signup/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "List and inspect color themes",
	Long: `List and inspect the color themes of the interactive board.

Custom themes are YAML files in the themes directory next to the config
file; a file named school.yaml provides the theme "school". Start one
from 'signup config theme export default'.

Select a theme with 'signup config set board.theme <name>'.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available themes",
	RunE:  runThemeList,
}

var themeInfoCmd = &cobra.Command{
	Use:   "info <theme-name>",
	Short: "Show the colors of a theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeInfo,
}

var themeExportCmd = &cobra.Command{
	Use:   "export <theme-name>",
	Short: "Print a theme as an editable YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeExport,
}

func init() {
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeInfoCmd)
	themeCmd.AddCommand(themeExportCmd)
}

// discoverThemes registers the custom themes and reports broken files on
// the command's error stream.
func discoverThemes(cmd *cobra.Command) {
	styles.ClearCustomThemes()
	_, errs := styles.DiscoverCustomThemes(appconfig.ThemesDir())
	for _, err := range errs {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
}

func runThemeList(cmd *cobra.Command, args []string) error {
	discoverThemes(cmd)
	out := cmd.OutOrStdout()
	current := appconfig.Get().Board.Theme

	printThemes := func(names []string) {
		for _, name := range names {
			marker := " "
			if name == current {
				marker = "*"
			}
			fmt.Fprintf(out, "  %s %s\n", marker, name)
		}
	}

	fmt.Fprintln(out, "Available themes:")
	printThemes(styles.BuiltinThemes())

	if custom := styles.CustomThemeNames(); len(custom) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Custom themes (%s):\n", appconfig.ThemesDir())
		printThemes(custom)
	}
	return nil
}

func runThemeInfo(cmd *cobra.Command, args []string) error {
	discoverThemes(cmd)
	themeName := args[0]
	if !styles.IsValidTheme(themeName) {
		return fmt.Errorf("unknown theme: %s\n\nRun 'signup config theme list' to see available themes", themeName)
	}

	out := cmd.OutOrStdout()
	palette := styles.GetPalette(styles.ThemeName(themeName))

	fmt.Fprintf(out, "Theme: %s\n", themeName)
	if custom := styles.GetCustomTheme(styles.ThemeName(themeName)); custom != nil {
		fmt.Fprintf(out, "Name: %s\n", custom.Name)
		if custom.Author != "" {
			fmt.Fprintf(out, "Author: %s\n", custom.Author)
		}
		if custom.Description != "" {
			fmt.Fprintf(out, "Description: %s\n", custom.Description)
		}
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Colors:")
	for _, c := range []struct {
		name  string
		color lipgloss.Color
	}{
		{"Primary", palette.Primary},
		{"Muted", palette.Muted},
		{"Text", palette.Text},
		{"Border", palette.Border},
		{"Success", palette.Success},
		{"Error", palette.Error},
		{"Info", palette.Info},
		{"Highlight", palette.Highlight},
		{"Warning", palette.Warning},
	} {
		fmt.Fprintf(out, "  %-10s %s\n", c.name+":", colorName(c.color))
	}
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	discoverThemes(cmd)
	data, err := styles.ExportTheme(styles.ThemeName(args[0]))
	if err != nil {
		return fmt.Errorf("%w\n\nRun 'signup config theme list' to see available themes", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func colorName(c lipgloss.Color) string {
	if c == "" {
		return "(terminal default)"
	}
	return string(c)
}

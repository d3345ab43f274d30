package cmd

import (
	"fmt"

	"github.com/Iron-Ham/signup/internal/confirm"
	"github.com/Iron-Ham/signup/internal/tui"
	"github.com/spf13/cobra"
)

var leaveCmd = &cobra.Command{
	Use:   "leave <activity> <email>",
	Short: "Remove a student from an activity",
	Long: `Remove a student from an activity.

Asks for confirmation first; only an explicit "y" or "yes" removes the
student. Use --yes to skip the question in scripts.

Example:
  signup leave "Chess Club" michael@mergington.edu`,
	Args: cobra.ExactArgs(2),
	RunE: runLeave,
}

func init() {
	rootCmd.AddCommand(leaveCmd)
	leaveCmd.Flags().BoolP("yes", "y", false, "remove without asking")
}

func runLeave(cmd *cobra.Command, args []string) error {
	activityName, email := args[0], args[1]

	var confirmer confirm.Confirmer = confirm.Prompt{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		confirmer = confirm.Always(true)
	}

	if !confirmer.Confirm(confirm.RemovalPrompt(email, activityName)) {
		fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
		return nil
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	message, err := s.client.RemoveParticipant(cmd.Context(), activityName, email)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), failureText(err, tui.RemovalErrorFallback, tui.RemovalNetworkFailed))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}

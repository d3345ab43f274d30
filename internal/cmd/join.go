package cmd

import (
	"fmt"

	"github.com/Iron-Ham/signup/internal/errors"
	"github.com/Iron-Ham/signup/internal/tui"
	"github.com/spf13/cobra"
)

var joinCmd = &cobra.Command{
	Use:   "join <activity> <email>",
	Short: "Sign a student up for an activity",
	Long: `Sign a student up for an activity.

The service decides whether the sign-up is accepted; its message is
printed either way.

Example:
  signup join "Chess Club" michael@mergington.edu`,
	Args: cobra.ExactArgs(2),
	RunE: runJoin,
}

func init() {
	rootCmd.AddCommand(joinCmd)
}

func runJoin(cmd *cobra.Command, args []string) error {
	activityName, email := args[0], args[1]

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	message, err := s.client.SignUp(cmd.Context(), activityName, email)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), failureText(err, tui.SignupErrorFallback, tui.SignupNetworkFailure))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), message)
	return nil
}

// failureText is the line shown for a failed mutation: the server's
// detail when it answered, fallback when it answered without one, and
// unreachable when there was no usable answer.
func failureText(err error, fallback, unreachable string) string {
	if errors.HasResponse(err) {
		return errors.DetailOr(err, fallback)
	}
	return unreachable
}

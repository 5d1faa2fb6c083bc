package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Hydrate(cmd.Context())
			if err != nil {
				return err
			}

			if !session.Authenticated() {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", session.DisplayName)
			return err
		},
	}
}

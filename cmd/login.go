package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and load your bookings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Hydrate(cmd.Context())
			if err != nil {
				return err
			}
			if session.Authenticated() {
				return fmt.Errorf("already logged in as %s; log out first", session.DisplayName)
			}

			displayName, err := app.auth.SubmitLogin(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", displayName)

			// The list refresh is sequenced after the completed login
			// exchange so it always runs with the fresh token.
			return refreshAndRender(cmd, app)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

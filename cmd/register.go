package cmd

import (
	"fmt"

	"github.com/bnema/biketaxi-cli/internal/application"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var name string
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new rider account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Hydrate(cmd.Context())
			if err != nil {
				return err
			}
			if session.Authenticated() {
				return fmt.Errorf("already logged in as %s; log out before registering", session.DisplayName)
			}

			if err := app.auth.SubmitRegister(cmd.Context(), name, email, password); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), application.RegisterConfirmation)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

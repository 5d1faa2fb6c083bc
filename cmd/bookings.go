package cmd

import (
	"fmt"

	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newBookingsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bookings",
		Short: "Show your booking history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := app.sessions.Hydrate(cmd.Context())
			if err != nil {
				return err
			}
			if !session.Authenticated() {
				return fmt.Errorf("view bookings: %w", domain.ErrNotAuthenticated)
			}

			return refreshAndRender(cmd, app)
		},
	}
}

package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/biketaxi-cli/internal/application"
	"github.com/spf13/cobra"
)

func newBookCmd(app *app) *cobra.Command {
	var source string
	var destination string
	var distance string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a ride and show the refreshed booking list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.sessions.Hydrate(cmd.Context()); err != nil {
				return err
			}

			var fare float64
			var outcome application.Outcome
			submit := func(ctx context.Context) error {
				var err error
				fare, outcome, err = app.bookings.Submit(ctx, source, destination, distance)
				return err
			}

			out := cmd.OutOrStdout()
			if isTerminal(out) {
				if err := runPendingSpinner(cmd.Context(), out, "Booking your ride...", submit); err != nil {
					return err
				}
			} else {
				loading, err := app.renderer(application.LoadingOutcome())
				if err != nil {
					return fmt.Errorf("render loading state: %w", err)
				}
				_, _ = fmt.Fprintln(out, loading)
				if err := submit(cmd.Context()); err != nil {
					return err
				}
			}

			_, _ = fmt.Fprintf(out, "Booking successful! Estimated fare: $%.2f\n", fare)

			rendered, err := app.renderer(outcome)
			if err != nil {
				return fmt.Errorf("render bookings: %w", err)
			}
			_, err = fmt.Fprintln(out, rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&source, "from", "", "Pickup location")
	cmd.Flags().StringVar(&destination, "to", "", "Drop-off location")
	cmd.Flags().StringVar(&distance, "distance", "", "Distance in kilometers")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}

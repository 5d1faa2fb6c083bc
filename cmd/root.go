package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bt",
		Short:         "Bike Taxi CLI (bt): book rides and manage your session",
		Long:          "bt is a terminal client for the bike-taxi booking service: register an account, log in, submit ride bookings, and view your booking history.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newBookCmd(app),
		newBookingsCmd(app),
		newWhoamiCmd(app),
	)

	return rootCmd
}

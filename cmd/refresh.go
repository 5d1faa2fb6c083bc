package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bnema/biketaxi-cli/internal/application"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// refreshAndRender fetches the full booking list and writes its rendered
// outcome. The pending state is a spinner on a terminal and the rendered
// loading line otherwise, so the list surface always shows something the
// moment the fetch starts.
func refreshAndRender(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()

	var outcome application.Outcome
	fetch := func(ctx context.Context) error {
		outcome = app.bookings.Refresh(ctx)
		return nil
	}

	if isTerminal(out) {
		if err := runPendingSpinner(cmd.Context(), out, "Loading bookings...", fetch); err != nil {
			return err
		}
	} else {
		loading, err := app.renderer(application.LoadingOutcome())
		if err != nil {
			return fmt.Errorf("render loading state: %w", err)
		}
		_, _ = fmt.Fprintln(out, loading)
		if err := fetch(cmd.Context()); err != nil {
			return err
		}
	}

	rendered, err := app.renderer(outcome)
	if err != nil {
		return fmt.Errorf("render bookings: %w", err)
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && isatty.IsTerminal(file.Fd())
}

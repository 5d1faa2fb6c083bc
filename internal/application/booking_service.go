package application

import (
	"context"
	"fmt"

	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/bnema/biketaxi-cli/internal/ports"
)

// BookingService validates and submits booking requests for the current
// session and re-fetches the authoritative list after every successful
// mutation. It never patches the list locally.
type BookingService struct {
	sessions *SessionService
	ride     ports.RideService
}

func NewBookingService(sessions *SessionService, ride ports.RideService) *BookingService {
	return &BookingService{
		sessions: sessions,
		ride:     ride,
	}
}

// Submit validates the raw input, sends the booking, and on success issues
// exactly one refresh, sequenced after the submit response. The draft is
// gone once the submit resolves, whatever the refresh outcome. A failed
// submit surfaces the server message without touching list state.
func (b *BookingService) Submit(ctx context.Context, source, destination, distanceRaw string) (float64, Outcome, error) {
	draft, err := domain.NewBookingDraft(source, destination, distanceRaw)
	if err != nil {
		return 0, Outcome{}, err
	}

	session := b.sessions.Current()
	if !session.Authenticated() {
		return 0, Outcome{}, fmt.Errorf("submit booking: %w", domain.ErrNotAuthenticated)
	}

	fare, err := b.ride.Book(ctx, session.Token, draft)
	if err != nil {
		return 0, Outcome{}, err
	}

	return fare, b.Refresh(ctx), nil
}

// Refresh fetches the full booking list and reduces it to a terminal
// outcome. A failed refresh carries its message and leaves the session
// untouched; it is not a logout trigger.
func (b *BookingService) Refresh(ctx context.Context) Outcome {
	session := b.sessions.Current()
	if !session.Authenticated() {
		return FailedOutcome(domain.ErrNotAuthenticated.Error())
	}

	records, err := b.ride.ListBookings(ctx, session.Token)
	if err != nil {
		return FailedOutcome(err.Error())
	}

	return PopulatedOutcome(records)
}

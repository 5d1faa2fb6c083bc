package ports

import (
	"context"

	"github.com/bnema/biketaxi-cli/internal/domain"
)

// RideService is the remote booking service boundary. Authenticated calls
// take the raw session token; the transport presents it verbatim.
type RideService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (token, displayName string, err error)
	Logout(ctx context.Context, token string) error
	Book(ctx context.Context, token string, draft domain.BookingDraft) (fare float64, err error)
	ListBookings(ctx context.Context, token string) ([]domain.BookingRecord, error)
}

package application

import (
	"context"

	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/bnema/biketaxi-cli/internal/ports"
)

type memoryStore struct {
	session  domain.Session
	hasValue bool
	loadErr  error
	saveErr  error
	clearErr error
}

var _ ports.SessionStore = (*memoryStore)(nil)

func (m *memoryStore) Load(context.Context) (domain.Session, error) {
	if m.loadErr != nil {
		return domain.Session{}, m.loadErr
	}
	if !m.hasValue {
		return domain.NewSession("", ""), nil
	}
	return m.session, nil
}

func (m *memoryStore) Save(_ context.Context, session domain.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.session = session
	m.hasValue = true
	return nil
}

func (m *memoryStore) Clear(context.Context) error {
	if m.clearErr != nil {
		return m.clearErr
	}
	m.session = domain.Session{}
	m.hasValue = false
	return nil
}

// fakeRide records every exchange in order so tests can assert both call
// counts and sequencing.
type fakeRide struct {
	calls []string

	registerErr error

	loginToken string
	loginName  string
	loginErr   error

	logoutErr error

	bookFare float64
	bookErr  error

	listRecords []domain.BookingRecord
	listErr     error

	lastToken string
	lastDraft domain.BookingDraft
}

var _ ports.RideService = (*fakeRide)(nil)

func (f *fakeRide) Register(_ context.Context, _, _, _ string) error {
	f.calls = append(f.calls, "register")
	return f.registerErr
}

func (f *fakeRide) Login(_ context.Context, _, _ string) (string, string, error) {
	f.calls = append(f.calls, "login")
	if f.loginErr != nil {
		return "", "", f.loginErr
	}
	return f.loginToken, f.loginName, nil
}

func (f *fakeRide) Logout(_ context.Context, token string) error {
	f.calls = append(f.calls, "logout")
	f.lastToken = token
	return f.logoutErr
}

func (f *fakeRide) Book(_ context.Context, token string, draft domain.BookingDraft) (float64, error) {
	f.calls = append(f.calls, "book")
	f.lastToken = token
	f.lastDraft = draft
	if f.bookErr != nil {
		return 0, f.bookErr
	}
	return f.bookFare, nil
}

func (f *fakeRide) ListBookings(_ context.Context, token string) ([]domain.BookingRecord, error) {
	f.calls = append(f.calls, "bookings")
	f.lastToken = token
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listRecords, nil
}

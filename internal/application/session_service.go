package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/biketaxi-cli/internal/domain"
	"github.com/bnema/biketaxi-cli/internal/ports"
)

// SessionService owns the client's session. It is the sole writer of both
// the in-memory session and the backing store; collaborators read value
// copies through Current.
//
// A rejected authenticated request never resets the session here. The
// session stays authenticated with its possibly stale token until an
// explicit logout; this mirrors the upstream client's behavior.
type SessionService struct {
	store ports.SessionStore
	ride  ports.RideService

	mu      sync.RWMutex
	session domain.Session
}

func NewSessionService(store ports.SessionStore, ride ports.RideService) *SessionService {
	return &SessionService{
		store:   store,
		ride:    ride,
		session: domain.NewSession("", ""),
	}
}

// Hydrate reads the persisted pair and adopts it. An absent or partial pair
// is a valid anonymous session, never an error.
func (s *SessionService) Hydrate(ctx context.Context) (domain.Session, error) {
	stored, err := s.store.Load(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("load stored session: %w", err)
	}

	session := domain.NewSession(stored.Token, stored.DisplayName)

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	return session, nil
}

// CompleteLogin persists the credential pair and flips the session to
// authenticated. It is called only after a successful login exchange and is
// idempotent for identical values.
func (s *SessionService) CompleteLogin(ctx context.Context, token, displayName string) error {
	session := domain.NewSession(token, displayName)
	if !session.Authenticated() {
		return fmt.Errorf("complete login: %w", domain.ErrNoSession)
	}

	if err := s.store.Save(ctx, session); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	return nil
}

// Logout notifies the service best-effort, then unconditionally clears the
// stored pair and resets to anonymous. The notification failure is
// swallowed; local logout always succeeds. No retries.
func (s *SessionService) Logout(ctx context.Context) error {
	current := s.Current()
	if current.Authenticated() {
		_ = s.ride.Logout(ctx, current.Token)
	}

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}

	s.mu.Lock()
	s.session = domain.NewSession("", "")
	s.mu.Unlock()

	return nil
}

func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

package ports

import (
	"context"

	"github.com/bnema/biketaxi-cli/internal/domain"
)

// SessionStore persists the token/display-name pair across process runs.
// Load of an absent store yields an anonymous session, not an error.
type SessionStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}

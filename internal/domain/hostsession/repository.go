package hostsession

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for host session persistence
type Repository interface {
	// Save stores a session for its user, replacing any previous session for
	// the same user. The write runs inside a single transaction.
	Save(ctx context.Context, session *Session) error

	// LatestToken returns the token of the most recently issued session
	// across ALL users. Returns shared.ErrNotFound when no session exists.
	LatestToken(ctx context.Context) (string, error)

	// FindByUserID returns the session owned by the given user, or
	// shared.ErrNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Session, error)
}

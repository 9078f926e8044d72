package hostsession

import (
	"time"

	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/domain/shared"
)

// Session is the cached result of a successful login against the external
// host. One row is kept per local user, but the token used for outbound
// calls is resolved by recency across all users: the external session is
// shared process-wide.
type Session struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Username    string     `gorm:"type:varchar(200);not null"`
	Token       string     `gorm:"type:text;not null"`
	IssuedAt    time.Time  `gorm:"not null;index"`
	ExpiresAt   *time.Time `gorm:""`
	RawResponse string     `gorm:"type:text"` // audit copy of the login body
}

// TableName returns the table name for GORM
func (Session) TableName() string {
	return "host_sessions"
}

// NewSession creates a session record from a validated host login
func NewSession(userID uuid.UUID, username, token, rawResponse string, expiresAt *time.Time) (*Session, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("MISSING_USER", "Host session requires an owning user")
	}
	if token == "" {
		return nil, shared.NewDomainError("MISSING_TOKEN", "Host session requires a token")
	}

	return &Session{
		ID:          uuid.New(),
		UserID:      userID,
		Username:    username,
		Token:       token,
		IssuedAt:    time.Now().UTC(),
		ExpiresAt:   expiresAt,
		RawResponse: rawResponse,
	}, nil
}

// IsExpired reports whether the session has a known, passed expiry.
// Sessions without an expiry are treated as live; the host is the authority.
func (s *Session) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}

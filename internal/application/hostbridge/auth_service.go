package hostbridge

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hostbridge/backend/internal/domain/hostsession"
	"github.com/hostbridge/backend/internal/domain/shared"
	"github.com/hostbridge/backend/internal/infrastructure/hostapi"
)

// ErrLoginRejected indicates the host answered the login call with a
// non-success HTTP status. Nothing is persisted.
var ErrLoginRejected = errors.New("hostbridge: host rejected login")

// ErrTokenMissing indicates the login response parsed but carried no token.
// Nothing is persisted.
var ErrTokenMissing = errors.New("hostbridge: host login response carried no token")

// expiryLayouts are the date formats the host has been observed to emit for
// token_expired. An unparseable value degrades to "no known expiry".
var expiryLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoginGateway is the slice of the host gateway that authentication needs
type LoginGateway interface {
	Login(ctx context.Context, username, password string) (*hostapi.RawResponse, error)
}

// AuthService acquires host session tokens: it logs in against the host,
// extracts the token from the noisy response, and persists the session for
// the owning user.
type AuthService struct {
	gateway  LoginGateway
	sessions hostsession.Repository
}

// NewAuthService creates a new AuthService
func NewAuthService(gateway LoginGateway, sessions hostsession.Repository) *AuthService {
	return &AuthService{
		gateway:  gateway,
		sessions: sessions,
	}
}

// Login performs a host login and persists the resulting session. The
// response body is fully validated before anything is written: a rejected
// call or a missing token leaves the session store untouched. A storage
// failure after validation is a fault and propagates.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	raw, err := s.gateway.Login(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}
	if raw.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: host returned status %d", ErrLoginRejected, raw.Code)
	}

	// The host pads the login body with noise around the JSON payload
	extracted := hostapi.ExtractFirstJSONObject(raw.Body)
	envelope, status := hostapi.Unwrap[hostapi.LoginEnvelope](extracted)
	if status != hostapi.DecodeOK || envelope.Response == nil || envelope.Response.Data == nil {
		return nil, ErrTokenMissing
	}

	data := envelope.Response.Data
	if data.Token == nil || *data.Token == "" {
		return nil, ErrTokenMissing
	}

	expiresAt := parseExpiry(data.TokenExpired)

	session, err := hostsession.NewSession(input.UserID, input.Username, *data.Token, raw.Body, expiresAt)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("hostbridge: failed to persist host session: %w", err)
	}

	return &LoginResult{
		Token:     session.Token,
		IssuedAt:  session.IssuedAt,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// CurrentToken returns the most recently issued session token across all
// users, or shared.ErrNotFound when no session exists.
func (s *AuthService) CurrentToken(ctx context.Context) (string, error) {
	return s.sessions.LatestToken(ctx)
}

// parseExpiry converts the host's token_expired string, when present and in
// a known layout, to a UTC instant. Anything else yields nil.
func parseExpiry(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	for _, layout := range expiryLayouts {
		if parsed, err := time.Parse(layout, *value); err == nil {
			utc := parsed.UTC()
			return &utc
		}
	}
	return nil
}

// SessionTokenSource adapts the session store to the gateway's TokenSource,
// translating an empty store into the gateway's no-session sentinel.
type SessionTokenSource struct {
	sessions hostsession.Repository
}

// NewSessionTokenSource creates a token source backed by the session store
func NewSessionTokenSource(sessions hostsession.Repository) *SessionTokenSource {
	return &SessionTokenSource{sessions: sessions}
}

// CurrentToken implements hostapi.TokenSource
func (ts *SessionTokenSource) CurrentToken(ctx context.Context) (string, error) {
	token, err := ts.sessions.LatestToken(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", hostapi.ErrNoSession
		}
		return "", err
	}
	return token, nil
}

var _ hostapi.TokenSource = (*SessionTokenSource)(nil)

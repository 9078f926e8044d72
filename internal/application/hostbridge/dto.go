package hostbridge

import (
	"time"

	"github.com/google/uuid"
)

// BridgeResult is the uniform caller-facing outcome of a single-item host
// operation. Code carries the transport status from the gateway; Success
// reflects the host's business outcome. List responses never pass through
// here, they are relayed raw.
type BridgeResult struct {
	Code    int      `json:"code"`
	Success bool     `json:"success"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors"`
}

// LoginInput carries what a host login needs: the caller's identity for
// session ownership plus the host credentials.
type LoginInput struct {
	UserID   uuid.UUID
	Username string
	Password string
}

// LoginResult reports a persisted host session
type LoginResult struct {
	Token     string     `json:"token"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// deleteData is the payload of a normalized delete result
type deleteData struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

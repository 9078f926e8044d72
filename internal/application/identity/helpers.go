package identity

import (
	"github.com/google/uuid"

	"github.com/hostbridge/backend/internal/domain/shared"
)

// parseUserID converts a path parameter into a user id
func parseUserID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, shared.NewDomainError("INVALID_ID", "Invalid user id")
	}
	return parsed, nil
}

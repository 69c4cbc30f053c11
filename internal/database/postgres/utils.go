// Package postgres holds the pgx-backed repository implementations.
package postgres

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/HabitInventory_Go/internal/domain"
)

// parseUserUUID parses a user ID string to uuid.UUID with consistent error message.
func parseUserUUID(userID string) (uuid.UUID, error) {
	u, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", domain.ErrInvalidUserID, err)
	}
	return u, nil
}

package repository

import (
	"context"

	"github.com/osse101/HabitInventory_Go/internal/domain"
)

// Inventory defines the interface for decoded item snapshot persistence
type Inventory interface {
	SaveSnapshot(ctx context.Context, snapshot *domain.ItemSnapshot) error
	// GetSnapshot returns domain.ErrSnapshotNotFound when the user has none.
	GetSnapshot(ctx context.Context, userID string) (*domain.ItemSnapshot, error)
	DeleteSnapshot(ctx context.Context, userID string) error
}

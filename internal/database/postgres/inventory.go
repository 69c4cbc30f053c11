package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/repository"
)

const (
	querySaveSnapshot = `
		INSERT INTO user_item_snapshots (user_id, items, degraded_fields, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET items = EXCLUDED.items,
		    degraded_fields = EXCLUDED.degraded_fields,
		    updated_at = EXCLUDED.updated_at`

	queryGetSnapshot = `
		SELECT items, degraded_fields, updated_at
		FROM user_item_snapshots
		WHERE user_id = $1`

	queryDeleteSnapshot = `DELETE FROM user_item_snapshots WHERE user_id = $1`
)

// InventoryRepository implements repository.Inventory for PostgreSQL
type InventoryRepository struct {
	pool *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(pool *pgxpool.Pool) repository.Inventory {
	return &InventoryRepository{pool: pool}
}

// SaveSnapshot inserts or replaces the user's snapshot
func (r *InventoryRepository) SaveSnapshot(ctx context.Context, snapshot *domain.ItemSnapshot) error {
	userUUID, err := parseUserUUID(snapshot.UserID)
	if err != nil {
		return err
	}

	items, err := json.Marshal(snapshot.Items)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalItems, err)
	}

	degraded := snapshot.DegradedFields
	if degraded == nil {
		degraded = []string{}
	}

	updatedAt := snapshot.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	if _, err := r.pool.Exec(ctx, querySaveSnapshot, userUUID, items, degraded, updatedAt); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgSaveSnapshot, err)
	}
	return nil
}

// GetSnapshot loads the user's snapshot
func (r *InventoryRepository) GetSnapshot(ctx context.Context, userID string) (*domain.ItemSnapshot, error) {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var (
		raw       []byte
		degraded  []string
		updatedAt time.Time
	)
	err = r.pool.QueryRow(ctx, queryGetSnapshot, userUUID).Scan(&raw, &degraded, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgGetSnapshot, err)
	}

	items := domain.NewUserItems()
	if err := json.Unmarshal(raw, items); err != nil {
		return nil, fmt.Errorf(ErrMsgUnmarshalItems, err)
	}

	return &domain.ItemSnapshot{
		UserID:         userUUID.String(),
		Items:          items,
		DegradedFields: degraded,
		UpdatedAt:      updatedAt,
	}, nil
}

// DeleteSnapshot removes the user's snapshot
func (r *InventoryRepository) DeleteSnapshot(ctx context.Context, userID string) error {
	userUUID, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, queryDeleteSnapshot, userUUID)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrDatabaseError, ErrMsgDeleteSnapshot, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSnapshotNotFound
	}
	return nil
}

// Package inventory ingests user-inventory payloads, keeps the latest decoded
// snapshot per user, and builds renderer summaries against the egg catalog.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HabitInventory_Go/internal/catalog"
	"github.com/osse101/HabitInventory_Go/internal/concurrency"
	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/logger"
	"github.com/osse101/HabitInventory_Go/internal/metrics"
	"github.com/osse101/HabitInventory_Go/internal/payload"
	"github.com/osse101/HabitInventory_Go/internal/repository"
)

// EggCatalog is the read side of the egg catalog
type EggCatalog interface {
	Egg(key string) (*domain.EggDefinition, error)
}

// DecodeResult is a decoded payload together with its degraded fields
type DecodeResult struct {
	Items        *domain.UserItems     `json:"items"`
	Degradations []payload.Degradation `json:"degradations"`
}

// Service defines the interface for inventory operations
type Service interface {
	Decode(ctx context.Context, raw []byte) (*DecodeResult, error)
	Ingest(ctx context.Context, userID string, raw []byte) (*domain.ItemSnapshot, error)
	Get(ctx context.Context, userID string) (*domain.ItemSnapshot, error)
	Summary(ctx context.Context, userID string) (*Summary, error)
	Delete(ctx context.Context, userID string) error
	GetCacheStats() CacheStats
}

type service struct {
	repo    repository.Inventory
	catalog EggCatalog
	decoder *payload.Decoder
	cache   *snapshotCache
	locks   *concurrency.LockManager
	now     func() time.Time
}

// NewService creates a new inventory service
func NewService(repo repository.Inventory, eggs EggCatalog, cacheConfig CacheConfig) Service {
	return &service{
		repo:    repo,
		catalog: eggs,
		decoder: payload.NewDecoder(),
		cache:   newSnapshotCache(cacheConfig),
		locks:   concurrency.NewLockManager(),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Decode runs the payload decoder without persisting anything
func (s *service) Decode(ctx context.Context, raw []byte) (*DecodeResult, error) {
	items, report, err := s.decode(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &DecodeResult{Items: items, Degradations: degradations(report)}, nil
}

// Ingest decodes the payload and replaces the user's stored snapshot
func (s *service) Ingest(ctx context.Context, userID string, raw []byte) (*domain.ItemSnapshot, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	items, report, err := s.decode(ctx, raw)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.ItemSnapshot{
		UserID:         userID,
		Items:          items,
		DegradedFields: report.Fields(),
		UpdatedAt:      s.now(),
	}

	// Writes and cache fills for one user are serialized so the cache never
	// holds an older snapshot than the store.
	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.repo.SaveSnapshot(ctx, snapshot); err != nil {
		s.cache.Invalidate(userID)
		return nil, fmt.Errorf(ErrMsgSaveSnapshotFailed, userID, err)
	}
	s.cache.Set(snapshot)

	logger.FromContext(ctx).Info(LogMsgSnapshotSaved,
		"user_id", userID,
		"eggs", len(items.OwnedEggs),
		"degraded", len(snapshot.DegradedFields))
	return snapshot, nil
}

// Get returns the stored snapshot, serving from cache when possible
func (s *service) Get(ctx context.Context, userID string) (*domain.ItemSnapshot, error) {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return nil, err
	}

	if snapshot, ok := s.cache.Get(userID); ok {
		return snapshot, nil
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	snapshot, err := s.repo.GetSnapshot(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetSnapshotFailed, userID, err)
	}

	s.cache.Set(snapshot)
	return snapshot, nil
}

// Summary aggregates the stored snapshot for renderers. Owned eggs missing
// from the catalog are listed without a definition.
func (s *service) Summary(ctx context.Context, userID string) (*Summary, error) {
	snapshot, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := snapshot.Items
	counts, totals := items.Counts(), items.Totals()

	summary := &Summary{
		UserID:         snapshot.UserID,
		CurrentPet:     items.CurrentPet,
		CurrentMount:   items.CurrentMount,
		Types:          make([]TypeSummary, 0, len(domain.ItemTypes)),
		Eggs:           make([]EggSummary, 0, len(items.OwnedEggs)),
		DegradedFields: snapshot.DegradedFields,
		UpdatedAt:      snapshot.UpdatedAt,
	}

	for _, t := range domain.ItemTypes {
		summary.Types = append(summary.Types, TypeSummary{
			ItemType: t,
			Distinct: counts[t],
			Total:    totals[t],
		})
	}

	log := logger.FromContext(ctx)
	for _, owned := range items.OwnedEggs {
		egg := EggSummary{
			Key:         owned.Key(),
			NumberOwned: owned.NumberOwned(),
			Display:     owned.Key(),
		}
		if s.catalog != nil {
			if def, err := s.catalog.Egg(owned.Key()); err == nil {
				egg.Definition = def
				egg.Display = catalog.DisplayName(def)
			} else {
				log.Debug(LogMsgUnknownEgg, "user_id", snapshot.UserID, "egg", owned.Key())
				summary.UnknownEggs = append(summary.UnknownEggs, owned.Key())
			}
		}
		summary.Eggs = append(summary.Eggs, egg)
	}

	return summary, nil
}

// Delete removes the stored snapshot
func (s *service) Delete(ctx context.Context, userID string) error {
	userID, err := normalizeUserID(userID)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	s.cache.Invalidate(userID)
	if err := s.repo.DeleteSnapshot(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return err
		}
		return fmt.Errorf(ErrMsgDeleteSnapshotFailed, userID, err)
	}

	logger.FromContext(ctx).Info(LogMsgSnapshotDeleted, "user_id", userID)
	return nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}

func (s *service) decode(ctx context.Context, raw []byte) (*domain.UserItems, payload.Report, error) {
	log := logger.FromContext(ctx)

	items, report, err := s.decoder.Decode(raw)
	if err != nil {
		metrics.RecordStructuralError()
		log.Warn(LogMsgPayloadStructural, "error", err, "bytes", len(raw))
		return nil, report, err
	}

	metrics.RecordDecode(items, report)
	if report.Degraded() {
		log.Warn(LogMsgPayloadDegraded, "fields", report.Fields())
	}
	return items, report, nil
}

func degradations(report payload.Report) []payload.Degradation {
	if report.Degradations == nil {
		return []payload.Degradation{}
	}
	return report.Degradations
}

// normalizeUserID validates the ID and returns its canonical lowercase form
// so cache keys match repository keys.
func normalizeUserID(userID string) (string, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidUserID, userID)
	}
	return id.String(), nil
}

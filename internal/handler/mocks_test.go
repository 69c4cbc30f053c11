package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HabitInventory_Go/internal/domain"
	"github.com/osse101/HabitInventory_Go/internal/inventory"
)

// MockInventoryService is a testify mock of inventory.Service
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) Decode(ctx context.Context, raw []byte) (*inventory.DecodeResult, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.DecodeResult), args.Error(1)
}

func (m *MockInventoryService) Ingest(ctx context.Context, userID string, raw []byte) (*domain.ItemSnapshot, error) {
	args := m.Called(ctx, userID, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemSnapshot), args.Error(1)
}

func (m *MockInventoryService) Get(ctx context.Context, userID string) (*domain.ItemSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemSnapshot), args.Error(1)
}

func (m *MockInventoryService) Summary(ctx context.Context, userID string) (*inventory.Summary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Summary), args.Error(1)
}

func (m *MockInventoryService) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockInventoryService) GetCacheStats() inventory.CacheStats {
	args := m.Called()
	return args.Get(0).(inventory.CacheStats)
}

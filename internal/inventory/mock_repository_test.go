package inventory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HabitInventory_Go/internal/domain"
)

// MockRepo is a testify mock of repository.Inventory
type MockRepo struct {
	mock.Mock
}

func (m *MockRepo) SaveSnapshot(ctx context.Context, snapshot *domain.ItemSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockRepo) GetSnapshot(ctx context.Context, userID string) (*domain.ItemSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemSnapshot), args.Error(1)
}

func (m *MockRepo) DeleteSnapshot(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facturalo/internal/domain"
)

// MockActivityRepo is a mock implementation of port.ActivityRepository.
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) UpsertLastComputed(ctx context.Context, userID uuid.UUID, year, period string, at time.Time) error {
	args := m.Called(ctx, userID, year, period, at)
	return args.Error(0)
}

func (m *MockActivityRepo) GetLastComputed(ctx context.Context, userID uuid.UUID) (*domain.FiscalActivity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalActivity), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facturalo/internal/domain"
)

// MockExpenseFiscalRepo is a mock implementation of port.ExpenseFiscalRepository.
type MockExpenseFiscalRepo struct {
	mock.Mock
}

func (m *MockExpenseFiscalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExpenseFiscalDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseFiscalDetail), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facturalo/internal/domain"
	"facturalo/internal/fiscal"
)

// MockFiscalSummaryService is a mock implementation of service.FiscalSummaryService.
type MockFiscalSummaryService struct {
	mock.Mock
}

func (m *MockFiscalSummaryService) GetSummary(ctx context.Context, userID uuid.UUID, year, period string) (*domain.FiscalSummary, error) {
	args := m.Called(ctx, userID, year, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalSummary), args.Error(1)
}

func (m *MockFiscalSummaryService) GetSummaryWithWarnings(ctx context.Context, userID uuid.UUID, year, period string) (*domain.FiscalSummary, []fiscal.Warning, error) {
	args := m.Called(ctx, userID, year, period)
	var summary *domain.FiscalSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.FiscalSummary)
	}
	var warnings []fiscal.Warning
	if args.Get(1) != nil {
		warnings = args.Get(1).([]fiscal.Warning)
	}
	return summary, warnings, args.Error(2)
}

func (m *MockFiscalSummaryService) GetLastComputed(ctx context.Context, userID uuid.UUID) (*domain.FiscalActivity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalActivity), args.Error(1)
}

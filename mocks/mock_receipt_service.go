package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"facturalo/internal/domain"
	"facturalo/internal/service"
)

// MockReceiptService is a mock implementation of service.ReceiptService.
type MockReceiptService struct {
	mock.Mock
}

func (m *MockReceiptService) Upload(ctx context.Context, input service.ReceiptUploadInput) (*domain.Receipt, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) GetByID(ctx context.Context, userID, receiptID uuid.UUID) (*domain.Receipt, error) {
	args := m.Called(ctx, userID, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Receipt, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Receipt), args.Int(1), args.Error(2)
}

func (m *MockReceiptService) GetDownloadURL(ctx context.Context, userID, receiptID uuid.UUID) (string, error) {
	args := m.Called(ctx, userID, receiptID)
	return args.String(0), args.Error(1)
}

func (m *MockReceiptService) Delete(ctx context.Context, userID, receiptID uuid.UUID) error {
	args := m.Called(ctx, userID, receiptID)
	return args.Error(0)
}

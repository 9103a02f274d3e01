package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"facturalo/internal/domain"
)

// InvoiceRepository provides read access to a user's issued invoices.
type InvoiceRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error)
	GetByID(ctx context.Context, userID, invoiceID uuid.UUID) (*domain.Invoice, error)
}

// TransactionRepository provides read access to a user's ledger transactions.
type TransactionRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
	GetByID(ctx context.Context, userID, transactionID uuid.UUID) (*domain.Transaction, error)
}

// ExpenseFiscalRepository provides read access to detailed expense fiscal
// breakdowns.
type ExpenseFiscalRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExpenseFiscalDetail, error)
}

// ActivityRepository persists the "last computed" marker written after each
// successful summary computation.
type ActivityRepository interface {
	UpsertLastComputed(ctx context.Context, userID uuid.UUID, year, period string, at time.Time) error
	GetLastComputed(ctx context.Context, userID uuid.UUID) (*domain.FiscalActivity, error)
}

// ReceiptRepository stores metadata for uploaded expense receipts.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, userID, receiptID uuid.UUID) (*domain.Receipt, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.Receipt, int, error)
	UpdateStatus(ctx context.Context, userID, receiptID uuid.UUID, status domain.ReceiptStatus) error
}

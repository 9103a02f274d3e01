package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"facturalo/internal/domain"
	"facturalo/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// invoiceRow maps the invoices table; additional taxes live in a JSONB
// column and are decoded into the typed model after scanning.
type invoiceRow struct {
	ID              uuid.UUID            `db:"id"`
	UserID          uuid.UUID            `db:"user_id"`
	IssueDate       time.Time            `db:"issue_date"`
	DueDate         *time.Time           `db:"due_date"`
	Subtotal        decimal.Decimal      `db:"subtotal"`
	Total           decimal.Decimal      `db:"total"`
	Status          domain.InvoiceStatus `db:"status"`
	AdditionalTaxes json.RawMessage      `db:"additional_taxes"`
	CreatedAt       time.Time            `db:"created_at"`
	UpdatedAt       time.Time            `db:"updated_at"`
}

func (r invoiceRow) toDomain() domain.Invoice {
	inv := domain.Invoice{
		ID:        r.ID,
		UserID:    r.UserID,
		IssueDate: r.IssueDate,
		DueDate:   r.DueDate,
		Subtotal:  r.Subtotal,
		Total:     r.Total,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if len(r.AdditionalTaxes) > 0 {
		if err := json.Unmarshal(r.AdditionalTaxes, &inv.AdditionalTaxes); err != nil {
			// Loosely typed upstream data: keep the invoice, drop the
			// undecodable tax lines and let the engine's warnings surface it.
			log.Printf("invoiceRepo: invoice %s has undecodable additional_taxes: %v", r.ID, err)
			inv.AdditionalTaxes = nil
		}
	}
	return inv
}

func (r *invoiceRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Invoice, error) {
	var rows []invoiceRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM invoices WHERE user_id = $1 ORDER BY issue_date ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByUser: %w", err)
	}

	invoices := make([]domain.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, row.toDomain())
	}
	return invoices, nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, userID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var row invoiceRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM invoices WHERE id = $1 AND user_id = $2`, invoiceID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	inv := row.toDomain()
	return &inv, nil
}

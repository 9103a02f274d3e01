package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facturalo/internal/domain"
	"facturalo/internal/port"
)

type expenseFiscalRepo struct {
	db *sqlx.DB
}

// NewExpenseFiscalRepo creates a new PostgreSQL-backed ExpenseFiscalRepository.
func NewExpenseFiscalRepo(db *sqlx.DB) port.ExpenseFiscalRepository {
	return &expenseFiscalRepo{db: db}
}

func (r *expenseFiscalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ExpenseFiscalDetail, error) {
	var details []domain.ExpenseFiscalDetail
	err := r.db.SelectContext(ctx, &details,
		`SELECT * FROM expense_fiscal_details WHERE user_id = $1 ORDER BY created_at ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("expenseFiscalRepo.ListByUser: %w", err)
	}
	return details, nil
}

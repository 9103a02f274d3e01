package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facturalo/internal/domain"
	"facturalo/internal/port"
)

type transactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepo creates a new PostgreSQL-backed TransactionRepository.
func NewTransactionRepo(db *sqlx.DB) port.TransactionRepository {
	return &transactionRepo{db: db}
}

func (r *transactionRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := r.db.SelectContext(ctx, &txs,
		`SELECT * FROM transactions WHERE user_id = $1 ORDER BY date ASC, id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("transactionRepo.ListByUser: %w", err)
	}
	return txs, nil
}

func (r *transactionRepo) GetByID(ctx context.Context, userID, transactionID uuid.UUID) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.GetContext(ctx, &tx,
		`SELECT * FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("transactionRepo.GetByID: %w", err)
	}
	return &tx, nil
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"facturalo/internal/domain"
	"facturalo/internal/port"
)

type activityRepo struct {
	db *sqlx.DB
}

// NewActivityRepo creates a new PostgreSQL-backed ActivityRepository.
func NewActivityRepo(db *sqlx.DB) port.ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) UpsertLastComputed(ctx context.Context, userID uuid.UUID, year, period string, at time.Time) error {
	query := `INSERT INTO fiscal_activity (user_id, year, period, last_computed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET year = EXCLUDED.year, period = EXCLUDED.period, last_computed_at = EXCLUDED.last_computed_at`

	if _, err := r.db.ExecContext(ctx, query, userID, year, period, at); err != nil {
		return fmt.Errorf("activityRepo.UpsertLastComputed: %w", err)
	}
	return nil
}

func (r *activityRepo) GetLastComputed(ctx context.Context, userID uuid.UUID) (*domain.FiscalActivity, error) {
	var activity domain.FiscalActivity
	err := r.db.GetContext(ctx, &activity,
		`SELECT * FROM fiscal_activity WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("activityRepo.GetLastComputed: %w", err)
	}
	return &activity, nil
}

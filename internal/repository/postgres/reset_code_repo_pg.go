package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mlehnert/linkup-backend/internal/domain"
)

type ResetCodeRepository struct {
	db *sqlx.DB
}

func NewResetCodeRepo(db *sqlx.DB) *ResetCodeRepository {
	return &ResetCodeRepository{db: db}
}

func (r *ResetCodeRepository) SaveResetCode(ctx context.Context, email, code string) (*domain.ResetCode, error) {
	const query = `
        INSERT INTO reset_codes (email, code)
        VALUES ($1, $2)
        RETURNING id, email, code, created_at
    `
	row := r.db.QueryRowxContext(ctx, query, email, code)
	var reset domain.ResetCode
	if err := row.StructScan(&reset); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *ResetCodeRepository) FindUnexpiredResetCodes(ctx context.Context, cutoff time.Time) ([]domain.ResetCode, error) {
	const query = `
        SELECT id, email, code, created_at
        FROM reset_codes
        WHERE created_at > $1
    `
	codes := []domain.ResetCode{}
	if err := r.db.SelectContext(ctx, &codes, query, cutoff); err != nil {
		return nil, err
	}
	return codes, nil
}

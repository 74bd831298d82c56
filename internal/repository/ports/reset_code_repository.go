package ports

import (
	"context"
	"time"

	"github.com/mlehnert/linkup-backend/internal/domain"
)

type ResetCodeRepository interface {
	SaveResetCode(ctx context.Context, email, code string) (*domain.ResetCode, error)
	// FindUnexpiredResetCodes returns every code created after the cutoff.
	// Rows come back in insertion order; callers must not depend on it.
	FindUnexpiredResetCodes(ctx context.Context, cutoff time.Time) ([]domain.ResetCode, error)
}

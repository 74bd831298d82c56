package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/mlehnert/linkup-backend/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, first, last, email string, passwordHash, passwordSalt []byte) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdatePassword(ctx context.Context, email string, passwordHash, passwordSalt []byte) error
	UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) (*domain.User, error)
	UpdateBio(ctx context.Context, id uuid.UUID, bio string) (*domain.User, error)
}

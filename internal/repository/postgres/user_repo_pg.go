package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mlehnert/linkup-backend/internal/domain"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, first, last, email string, passwordHash, passwordSalt []byte) (*domain.User, error) {
	const query = `
        INSERT INTO users (first_name, last_name, email, password_hash, password_salt)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, first_name, last_name, email, password_hash, password_salt, image_url, bio, created_at, updated_at
    `

	row := r.db.QueryRowxContext(ctx, query, first, last, email, passwordHash, passwordSalt)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, password_salt, image_url, bio, created_at, updated_at
        FROM users
        WHERE email = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const query = `
        SELECT id, first_name, last_name, email, password_hash, password_salt, image_url, bio, created_at, updated_at
        FROM users
        WHERE id = $1
    `
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, email string, passwordHash, passwordSalt []byte) error {
	const query = `
        UPDATE users
        SET password_hash = $2,
            password_salt = $3,
            updated_at = NOW()
        WHERE email = $1
    `
	res, err := r.db.ExecContext(ctx, query, email, passwordHash, passwordSalt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *UserRepository) UpdateProfileImage(ctx context.Context, id uuid.UUID, imageURL string) (*domain.User, error) {
	const query = `
        UPDATE users
        SET image_url = $2,
            updated_at = NOW()
        WHERE id = $1
        RETURNING id, first_name, last_name, email, password_hash, password_salt, image_url, bio, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, id, imageURL)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateBio(ctx context.Context, id uuid.UUID, bio string) (*domain.User, error) {
	const query = `
        UPDATE users
        SET bio = $2,
            updated_at = NOW()
        WHERE id = $1
        RETURNING id, first_name, last_name, email, password_hash, password_salt, image_url, bio, created_at, updated_at
    `
	row := r.db.QueryRowxContext(ctx, query, id, bio)
	var user domain.User
	if err := row.StructScan(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

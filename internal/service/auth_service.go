package service

import (
	"context"
	"errors"
	"strings"

	"github.com/mlehnert/linkup-backend/internal/domain"
	"github.com/mlehnert/linkup-backend/internal/repository/ports"
	"github.com/mlehnert/linkup-backend/internal/util"
)

var (
	ErrMissingFields      = errors.New("required field missing")
	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService covers registration and login. Lookup failures and credential
// mismatches both surface as ErrInvalidCredentials: the boundary deliberately
// does not distinguish an unknown email from a wrong password.
type AuthService struct {
	users ports.UserRepository
}

func NewAuthService(users ports.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user from the four required fields. All four must be
// non-empty after trimming; the caller signals any violation uniformly, with
// no per-field detail.
func (s *AuthService) Register(ctx context.Context, first, last, email, password string) (*domain.User, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	email = normalizeEmail(email)

	if first == "" || last == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, salt, err := util.DerivePassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, first, last, email, hash, salt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyUsed
		}
		return nil, err
	}
	return user, nil
}

// Login checks the supplied password against the stored hash in constant time.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !util.VerifyPassword(password, user.PasswordSalt, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

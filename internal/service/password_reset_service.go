package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mlehnert/linkup-backend/internal/repository/ports"
	"github.com/mlehnert/linkup-backend/internal/util"
)

var (
	ErrUnknownEmail         = errors.New("no account for email")
	ErrCodeInvalidOrExpired = errors.New("reset code invalid or expired")
)

type ResetCodeSender interface {
	SendResetCode(ctx context.Context, email, code string) error
}

// PasswordResetService drives the reset-code lifecycle: issue a short random
// code, mail it out, and later trade a matching unexpired code for a new
// password. A code's validity is its age alone; nothing marks it consumed, so
// it stays honorable until the window lapses even after a successful verify.
type PasswordResetService struct {
	users      ports.UserRepository
	codes      ports.ResetCodeRepository
	mailer     ResetCodeSender
	codeTTL    time.Duration
	codeLength int
}

func NewPasswordResetService(users ports.UserRepository, codes ports.ResetCodeRepository, mailer ResetCodeSender, codeTTL time.Duration, codeLength int) *PasswordResetService {
	if codeTTL <= 0 {
		codeTTL = 10 * time.Minute
	}
	if codeLength <= 0 {
		codeLength = 6
	}
	return &PasswordResetService{
		users:      users,
		codes:      codes,
		mailer:     mailer,
		codeTTL:    codeTTL,
		codeLength: codeLength,
	}
}

// Start issues a reset code for the given email and mails it out. The code
// row is persisted before the send is attempted; a mail failure is reported
// but leaves the row in place.
func (s *PasswordResetService) Start(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		if isNotFound(err) {
			return ErrUnknownEmail
		}
		return err
	}

	code, err := util.GenerateResetCode(s.codeLength)
	if err != nil {
		return err
	}

	if _, err := s.codes.SaveResetCode(ctx, email, code); err != nil {
		return fmt.Errorf("save reset code: %w", err)
	}

	if err := s.mailer.SendResetCode(ctx, email, code); err != nil {
		return fmt.Errorf("send reset code: %w", err)
	}
	return nil
}

// Verify scans the unexpired codes for an exact match and, when found,
// replaces the matched email's password. The match window is evaluated at
// verification time, not at insertion time.
func (s *PasswordResetService) Verify(ctx context.Context, code, newPassword string) error {
	if code == "" || newPassword == "" {
		return ErrCodeInvalidOrExpired
	}

	cutoff := time.Now().Add(-s.codeTTL)
	candidates, err := s.codes.FindUnexpiredResetCodes(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, candidate := range candidates {
		if candidate.Code != code {
			continue
		}
		hash, salt, err := util.DerivePassword(newPassword)
		if err != nil {
			return err
		}
		if err := s.users.UpdatePassword(ctx, candidate.Email, hash, salt); err != nil {
			if isNotFound(err) {
				return ErrUnknownEmail
			}
			return err
		}
		return nil
	}

	return ErrCodeInvalidOrExpired
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopward/shopward_backend/internal/apperrors"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/middleware"
	"github.com/shopward/shopward_backend/internal/utils"
)

const recoveryCodeLength = 4

// recoveryService implements the RecoverySvcFacade interface
type recoveryService struct {
	userSvc portssvc.UserReaderSvc
	mailer  portssvc.MailSenderSvc
}

// NewRecoveryService creates a new instance of recoveryService
func NewRecoveryService(userSvc portssvc.UserReaderSvc, mailer portssvc.MailSenderSvc) portssvc.RecoverySvcFacade {
	return &recoveryService{
		userSvc: userSvc,
		mailer:  mailer,
	}
}

func (s *recoveryService) SendRecoveryCode(ctx context.Context, email string) error {
	// The lookup matches the submitted email against the username column,
	// so recovery only works for accounts whose username is their email.
	user, err := s.userSvc.GetUserByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("no account for %s: %w", email, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to look up account for recovery: %w", err)
	}

	code, err := utils.GenerateRecoveryCode(recoveryCodeLength)
	if err != nil {
		return fmt.Errorf("failed to generate recovery code: %w", err)
	}

	if err := s.mailer.SendRecoveryCode(ctx, user.Email, code); err != nil {
		return fmt.Errorf("failed to send recovery code: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("recovery code sent", "username", user.Username)

	return nil
}

package services

import (
	"context"
	"time"

	"github.com/shopward/shopward_backend/internal/core/domain"
)

// TokenSvcFacade issues and verifies the signed session tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived access token carrying the
	// user's username and role. Returns the token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a longer-lived refresh token carrying the username.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ParseRefreshToken verifies a refresh token's signature and returns the
	// username embedded in it.
	ParseRefreshToken(ctx context.Context, refreshToken string) (string, error)
}

// RecoverySvcFacade handles the account-recovery flow.
type RecoverySvcFacade interface {
	// SendRecoveryCode generates a recovery code and mails it to the account's
	// address. The supplied email is matched against the username column.
	SendRecoveryCode(ctx context.Context, email string) error
}

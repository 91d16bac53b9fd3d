package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/platform/config"
	"github.com/shopward/shopward_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade interface
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.AccessTokenExpiry)
	token, err := utils.GenerateAccessToken(
		user.Username,
		string(user.Role),
		s.cfg.AccessTokenSecret,
		s.cfg.TokenIssuer,
		s.cfg.AccessTokenExpiry,
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiryTime, nil
}

func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiry)
	token, err := utils.GenerateRefreshToken(
		user.Username,
		s.cfg.RefreshTokenSecret,
		s.cfg.TokenIssuer,
		s.cfg.RefreshTokenExpiry,
	)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return token, expiryTime, nil
}

func (s *tokenService) ParseRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	username, err := utils.ParseRefreshToken(refreshToken, s.cfg.RefreshTokenSecret)
	if err != nil {
		return "", fmt.Errorf("invalid refresh token: %w", apperrors.ErrForbidden)
	}
	return username, nil
}

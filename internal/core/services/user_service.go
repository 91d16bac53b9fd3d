package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portsrepo "github.com/shopward/shopward_backend/internal/core/ports/repositories"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
	"github.com/shopward/shopward_backend/internal/middleware"
)

// userService implements the UserSvcFacade interface
type userService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new instance of userService
func NewUserService(userRepo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

func (s *userService) SearchUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	users, err := s.userRepo.SearchUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s is taken: %w", req.Username, apperrors.ErrDuplicate)
	}

	now := time.Now()
	user := domain.User{
		Username:  req.Username,
		Email:     req.Email,
		Name:      req.Name,
		Address:   req.Address,
		Password:  req.Password,
		Role:      domain.RoleUser,
		Status:    domain.UserStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (s *userService) EditUser(ctx context.Context, req dto.EditUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load user for edit: %w", err)
	}

	if req.Password != "" {
		user.Password = req.Password
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *userService) ChangeUserStatus(ctx context.Context, username string, status domain.UserStatus, forceDeleted bool) (*domain.User, error) {
	if forceDeleted {
		status = domain.UserStatusDeleted
	}
	if !domain.ValidUserStatus(status) {
		return nil, fmt.Errorf("unknown user status %q: %w", status, apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load user for status change: %w", err)
	}

	if err := s.userRepo.UpdateUserStatus(ctx, username, status); err != nil {
		return nil, fmt.Errorf("failed to change user status: %w", err)
	}
	user.Status = status

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("user status changed", "username", username, "status", status)

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("unknown username: %w", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user for authentication: %w", err)
	}

	// Passwords are stored and compared as plain text, matching the
	// inherited data. Hashing would lock out every existing account.
	if user.Password != password {
		return nil, fmt.Errorf("password mismatch: %w", apperrors.ErrUnauthorized)
	}

	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, username, refreshToken string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, username, refreshToken); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, username string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, username, ""); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (s *userService) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user by refresh token: %w", err)
	}
	return user, nil
}

package repositories

import (
	"context"

	"github.com/shopward/shopward_backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser inserts a new user row.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByRefreshToken retrieves the user holding the given refresh token.
	FindUserByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)

	// UpdateUser persists the mutable profile fields (password, email, address, name).
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateUserStatus sets the account status.
	UpdateUserStatus(ctx context.Context, username string, status domain.UserStatus) error

	// UpdateRefreshToken stores the refresh token for a user; an empty value logs the user out.
	UpdateRefreshToken(ctx context.Context, username string, refreshToken string) error

	// SearchUsers returns users matching the filter specification.
	SearchUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
}

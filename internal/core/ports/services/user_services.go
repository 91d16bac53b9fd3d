package services

import (
	"context"

	"github.com/shopward/shopward_backend/internal/core/domain"
	"github.com/shopward/shopward_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// SearchUsers retrieves users matching the filter specification.
	SearchUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user after a username duplicate check.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// EditUser overwrites the profile fields present in the request.
	// The username itself is immutable through this path.
	EditUser(ctx context.Context, req dto.EditUserRequest) (*domain.User, error)

	// ChangeUserStatus applies the requested status; forceDeleted overrides the
	// request with the Deleted sentinel (DELETE-method semantics).
	ChangeUserStatus(ctx context.Context, username string, status domain.UserStatus, forceDeleted bool) (*domain.User, error)
}

// UserAuthSvc defines operations backing the session lifecycle
type UserAuthSvc interface {
	// Authenticate checks the submitted password against the stored value.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// UpdateRefreshToken stores a freshly issued refresh token on the user row.
	UpdateRefreshToken(ctx context.Context, username, refreshToken string) error

	// ClearRefreshToken wipes the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, username string) error

	// GetUserByRefreshToken finds the user holding the given refresh token.
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}

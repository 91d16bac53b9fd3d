package dto

import "github.com/shopward/shopward_backend/internal/core/domain"

// LoginRequest carries the credentials for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LogoutRequest identifies the session to terminate.
type LogoutRequest struct {
	Username string `json:"username"`
}

// ForgotPasswordRequest starts the account-recovery flow.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ValidateRecoveryCodeRequest is accepted for shape only; the recovery code
// is never persisted, so there is nothing to validate against yet.
type ValidateRecoveryCodeRequest struct {
	Email        string `json:"email"`
	RecoveryCode string `json:"recoveryCode"`
}

// ResetPasswordRequest is accepted for shape only.
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// AuthResponse returns the access token (in the data field, where existing
// clients read it) plus the authenticated role. The refresh token travels only
// in the http-only cookie.
type AuthResponse struct {
	Data string          `json:"data"`
	Role domain.UserRole `json:"role"`
}

// RefreshResponse returns a freshly minted access token.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
	"github.com/shopward/shopward_backend/internal/middleware"
	"github.com/shopward/shopward_backend/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	userService     portssvc.UserSvcFacade
	tokenService    portssvc.TokenSvcFacade
	recoveryService portssvc.RecoverySvcFacade
	cookieName      string
	refreshExpiry   time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService:     services.User,
		tokenService:    services.Token,
		recoveryService: services.Recovery,
		cookieName:      cfg.RefreshTokenCookieName,
		refreshExpiry:   cfg.RefreshTokenExpiry,
	}
}

// registerAuthRoutes sets up the public authentication routes, rate limited by client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMW := middleware.RateLimit(ipLimiter)

	auth := r.Group("/auth", limitMW)
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/validate-recovery-code", h.ValidateRecoveryCode)
		auth.POST("/reset-password", h.ResetPassword)
	}
}

// setRefreshCookie attaches the refresh token as an http-only secure cookie.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetCookie(h.cookieName, refreshToken, int(h.refreshExpiry.Seconds()), "/", "", true, true)
}

func (h *AuthHandler) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", true, true)
}

// issueSession mints both tokens, persists the refresh token and sets the
// cookie. Returns the access token.
func (h *AuthHandler) issueSession(c *gin.Context, user *domain.User) (string, error) {
	ctx := c.Request.Context()

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return "", err
	}
	refreshToken, _, err := h.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return "", err
	}
	if err := h.userService.UpdateRefreshToken(ctx, user.Username, refreshToken); err != nil {
		return "", err
	}

	h.setRefreshCookie(c, refreshToken)
	return accessToken, nil
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if msg := requiredUserField(req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "User by this username already exists"})
			return
		}
		logError(c, "Failed to sign up user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	accessToken, err := h.issueSession(c, user)
	if err != nil {
		logError(c, "Failed to issue session on signup", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Data: accessToken, Role: user.Role})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.userService.GetUserByUsername(ctx, req.Username); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Username does not exist"})
			return
		}
		logError(c, "Failed to load user on login", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	user, err := h.userService.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid username or password"})
		return
	}

	accessToken, err := h.issueSession(c, user)
	if err != nil {
		logError(c, "Failed to issue session on login", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Data: accessToken, Role: user.Role})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.userService.GetUserByUsername(ctx, req.Username); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Username does not exist"})
			return
		}
		logError(c, "Failed to load user on logout", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if err := h.userService.ClearRefreshToken(ctx, req.Username); err != nil {
		logError(c, "Failed to clear refresh token", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	h.clearRefreshCookie(c)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cookieName)
	if err != nil || refreshToken == "" {
		c.Status(http.StatusUnauthorized)
		return
	}

	ctx := c.Request.Context()
	user, err := h.userService.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		c.Status(http.StatusForbidden)
		return
	}

	username, err := h.tokenService.ParseRefreshToken(ctx, refreshToken)
	if err != nil || username != user.Username {
		c.Status(http.StatusForbidden)
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logError(c, "Failed to generate access token on refresh", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.recoveryService.SendRecoveryCode(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No user found by this email"})
			return
		}
		logError(c, "Failed to send recovery code", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "Recovery code sent successfully. "})
}

// ValidateRecoveryCode accepts the documented body shape. Recovery codes are
// not persisted, so there is nothing to check the submission against.
func (h *AuthHandler) ValidateRecoveryCode(c *gin.Context) {
	var req dto.ValidateRecoveryCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ResetPassword accepts the documented body shape without acting on it.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	c.Status(http.StatusNoContent)
}

// requiredUserField returns the first missing-field message for the signup and
// user-creation bodies, or "" when all fields are present.
func requiredUserField(req dto.CreateUserRequest) string {
	switch {
	case req.Username == "":
		return "Username is required"
	case req.Password == "":
		return "Password is required"
	case req.Email == "":
		return "Email is required"
	case req.Address == "":
		return "Address is required"
	case req.Name == "":
		return "Name is required"
	}
	return ""
}

// logError logs a handler failure with the request-scoped logger.
func logError(c *gin.Context, msg string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Error(msg, slog.String("error", err.Error()))
}

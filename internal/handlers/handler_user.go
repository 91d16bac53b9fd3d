package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
	"github.com/shopward/shopward_backend/internal/middleware"
)

// UserHandler handles user management requests.
type UserHandler struct {
	userService portssvc.UserSvcFacade
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService portssvc.UserSvcFacade) *UserHandler {
	return &UserHandler{userService: userService}
}

// registerUserRoutes sets up the routes for user management.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := NewUserHandler(userService)

	rg.POST("", h.CreateUser)
	rg.PUT("", h.EditUser)
	rg.PATCH("/status", h.ChangeUserStatus)
	rg.DELETE("/status", h.ChangeUserStatus)
	rg.GET("/:username", h.GetUserByUsername)
	rg.POST("/search", h.SearchUsers)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if msg := requiredUserField(req); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"message": "User by this username already exists"})
			return
		}
		logError(c, "Failed to create user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": fmt.Sprintf("user name by this username: %s created", user.Username)})
}

func (h *UserHandler) EditUser(c *gin.Context) {
	var req dto.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.userService.EditUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Username does not exist"})
			return
		}
		logError(c, "Failed to edit user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": fmt.Sprintf("user name by this username: %s updated", user.Username)})
}

// ChangeUserStatus serves both PATCH and DELETE; the DELETE method forces the
// Deleted status regardless of the body.
func (h *UserHandler) ChangeUserStatus(c *gin.Context) {
	var req dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	forceDeleted := c.Request.Method == http.MethodDelete
	status := domain.UserStatus(req.UserStatus)

	user, err := h.userService.ChangeUserStatus(c.Request.Context(), req.Username, status, forceDeleted)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "UserStatus is invalid"})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Username does not exist"})
			return
		}
		logError(c, "Failed to change user status", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": fmt.Sprintf("user name by this username: %s updated", user.Username)})
}

func (h *UserHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username is required"})
		return
	}

	callerUsername, _ := middleware.GetUsernameFromContext(c)
	callerRole, _ := middleware.GetRoleFromContext(c)
	if callerRole != string(domain.RoleAdmin) && callerUsername != username {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden requset"})
		return
	}

	user, err := h.userService.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Username does not exist"})
			return
		}
		logError(c, "Failed to get user", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.ToUserInfo(user)})
}

func (h *UserHandler) SearchUsers(c *gin.Context) {
	var req dto.SearchUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	users, err := h.userService.SearchUsers(c.Request.Context(), req.ToDomain())
	if err != nil {
		logError(c, "Failed to search users", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": dto.ToUserInfoList(users)})
}

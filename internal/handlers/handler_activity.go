package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopward/shopward_backend/internal/apperrors"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
)

// ActivityHandler handles activity feed requests.
type ActivityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(activityService portssvc.ActivitySvcFacade) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// registerActivityRoutes sets up the routes for the activity feed.
func registerActivityRoutes(rg *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := NewActivityHandler(activityService)

	rg.POST("", h.CreateActivity)
	rg.GET("", h.ListActivities)
	rg.DELETE("/:id", h.DeleteActivity)
}

func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req dto.CreateActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "text is required"})
		return
	}
	if req.Provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "provider is required"})
		return
	}

	// The image is optional; FormFile errors simply mean none was sent.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), req, image)
	if err != nil {
		if errors.Is(err, apperrors.ErrStorage) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error while saving the image!"})
			return
		}
		logError(c, "Failed to create activity", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": fmt.Sprintf("Activity by this id: %s created", activity.ActivityID)})
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	var params dto.ListActivitiesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid query parameters"})
		return
	}

	activities, count, err := h.activityService.ListActivities(c.Request.Context(), params.ToDomain())
	if err != nil {
		logError(c, "Failed to list activities", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusOK, dto.ListActivitiesResponse{Data: activities, Count: count})
}

func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id is Empty"})
		return
	}

	if err := h.activityService.DeleteActivity(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
			return
		}
		logError(c, "Failed to delete activity", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": fmt.Sprintf("activity by this id: %s deleted", id)})
}

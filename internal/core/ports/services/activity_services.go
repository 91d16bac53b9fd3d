package services

import (
	"context"
	"mime/multipart"

	"github.com/shopward/shopward_backend/internal/core/domain"
	"github.com/shopward/shopward_backend/internal/dto"
)

// ActivitySvcFacade defines the operations on activities.
type ActivitySvcFacade interface {
	// CreateActivity persists a new activity, storing the optional image first.
	CreateActivity(ctx context.Context, req dto.CreateActivityRequest, image *multipart.FileHeader) (*domain.Activity, error)

	// ListActivities returns matching activities and the total match count.
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error)

	// DeleteActivity hard-deletes an activity by id.
	DeleteActivity(ctx context.Context, activityID string) error
}

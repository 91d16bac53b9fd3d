package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portsrepo "github.com/shopward/shopward_backend/internal/core/ports/repositories"
	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/dto"
	"github.com/shopward/shopward_backend/internal/middleware"
)

// activityService implements the ActivitySvcFacade interface
type activityService struct {
	activityRepo portsrepo.ActivityRepository
	fileStore    portssvc.FileStoreSvc
}

// NewActivityService creates a new instance of activityService
func NewActivityService(activityRepo portsrepo.ActivityRepository, fileStore portssvc.FileStoreSvc) portssvc.ActivitySvcFacade {
	return &activityService{
		activityRepo: activityRepo,
		fileStore:    fileStore,
	}
}

func (s *activityService) CreateActivity(ctx context.Context, req dto.CreateActivityRequest, image *multipart.FileHeader) (*domain.Activity, error) {
	imagePath := ""
	if image != nil {
		stored, err := s.fileStore.Save(ctx, image)
		if err != nil {
			return nil, fmt.Errorf("failed to store activity image: %w", apperrors.ErrStorage)
		}
		imagePath = stored
	}

	activity := domain.Activity{
		ActivityID: uuid.NewString(),
		Text:       req.Text,
		Provider:   req.Provider,
		ImagePath:  imagePath,
		CreatedAt:  time.Now(),
	}

	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("activity created", "activity_id", activity.ActivityID, "provider", activity.Provider)

	return &activity, nil
}

func (s *activityService) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error) {
	activities, count, err := s.activityRepo.ListActivities(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, count, nil
}

func (s *activityService) DeleteActivity(ctx context.Context, activityID string) error {
	// The stored image file is left behind on purpose; rows only.
	if err := s.activityRepo.DeleteActivity(ctx, activityID); err != nil {
		return err
	}
	return nil
}

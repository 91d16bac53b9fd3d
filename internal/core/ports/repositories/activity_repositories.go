package repositories

import (
	"context"

	"github.com/shopward/shopward_backend/internal/core/domain"
)

// ActivityRepository defines persistence operations for activities.
type ActivityRepository interface {
	// SaveActivity inserts a new activity row.
	SaveActivity(ctx context.Context, activity domain.Activity) error

	// ListActivities returns the matching page of activities plus the total
	// match count ignoring pagination.
	ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error)

	// DeleteActivity hard-deletes an activity row.
	DeleteActivity(ctx context.Context, activityID string) error
}

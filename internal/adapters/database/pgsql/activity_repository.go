package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopward/shopward_backend/internal/apperrors"
	"github.com/shopward/shopward_backend/internal/core/domain"
	portsrepo "github.com/shopward/shopward_backend/internal/core/ports/repositories"
)

type PgxActivityRepository struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) portsrepo.ActivityRepository {
	return &PgxActivityRepository{db: db}
}

// Ensure PgxActivityRepository implements portsrepo.ActivityRepository
var _ portsrepo.ActivityRepository = (*PgxActivityRepository)(nil)

// activitySortColumns whitelists the sortable columns for activity listing.
var activitySortColumns = map[string]string{
	"text":      "text",
	"provider":  "provider",
	"createdAt": "created_at",
}

func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	query := `
        INSERT INTO activities (activity_id, text, provider, image_path, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		activity.ActivityID,
		activity.Text,
		activity.Provider,
		activity.ImagePath,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}
	return nil
}

func (r *PgxActivityRepository) ListActivities(ctx context.Context, filter domain.ActivityFilter) ([]domain.Activity, int64, error) {
	cond := "1=1"
	args := []any{}
	if filter.Provider != "" {
		args = append(args, filter.Provider)
		cond = fmt.Sprintf("provider ILIKE '%%' || $%d || '%%'", len(args))
	}

	var count int64
	countQuery := `SELECT COUNT(*) FROM activities WHERE ` + cond
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	column, ok := activitySortColumns[filter.Sort.SortOn]
	if !ok {
		column = "text"
	}
	direction := "ASC"
	if !filter.Sort.Ascending {
		direction = "DESC"
	}

	query := `
        SELECT activity_id, text, provider, image_path, created_at
        FROM activities
        WHERE ` + cond + fmt.Sprintf(" ORDER BY %s %s", column, direction)

	if limit := filter.Paging.Limit(); limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filter.Paging.Offset())
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ActivityID, &a.Text, &a.Provider, &a.ImagePath, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating activity rows: %w", rows.Err())
	}

	return activities, count, nil
}

func (r *PgxActivityRepository) DeleteActivity(ctx context.Context, activityID string) error {
	query := `DELETE FROM activities WHERE activity_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, activityID)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("activity not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
	"github.com/stockroomhq/stockroom/pkg/database"
)

// ActivityRepository is the PostgreSQL implementation of repository.ActivityRepository.
type ActivityRepository struct {
	db database.DBTX
}

// NewActivityRepository creates an activity repository over the given querier.
func NewActivityRepository(db database.DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, userID int64, action, detail string) error {
	query := `INSERT INTO activity_log (user_id, action, detail) VALUES ($1, $2, $3)`

	if _, err := r.db.Exec(ctx, query, userID, action, detail); err != nil {
		return fmt.Errorf("create activity entry: %w", err)
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, since time.Time, params repository.ListParams) ([]domain.ActivityLog, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM activity_log WHERE created_at >= $1`, since).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count activity entries: %w", err)
	}

	query := `
		SELECT id, user_id, action, detail, created_at
		FROM activity_log
		WHERE created_at >= $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, since, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list activity entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.ActivityLog
	for rows.Next() {
		var e domain.ActivityLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate activity entries: %w", err)
	}
	return entries, total, nil
}

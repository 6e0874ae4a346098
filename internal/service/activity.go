package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/stockroomhq/stockroom/internal/domain"
	"github.com/stockroomhq/stockroom/internal/repository"
)

// ActivityService records user-visible actions for the activity feed.
type ActivityService struct {
	activities repository.ActivityRepository
	log        *slog.Logger
}

// NewActivityService creates the activity logger.
func NewActivityService(activities repository.ActivityRepository, log *slog.Logger) *ActivityService {
	return &ActivityService{activities: activities, log: log}
}

// Record writes an activity entry. Failures are logged and swallowed: the
// entry is a side channel and must never fail the action it describes.
func (s *ActivityService) Record(ctx context.Context, userID int64, action, detail string) {
	if err := s.activities.Create(ctx, userID, action, detail); err != nil {
		s.log.WarnContext(ctx, "activity log write failed",
			slog.Int64("user_id", userID),
			slog.String("action", action),
			slog.String("error", err.Error()),
		)
	}
}

// List returns activity entries created at or after since, newest first.
func (s *ActivityService) List(ctx context.Context, since time.Time, params repository.ListParams) ([]domain.ActivityLog, int, error) {
	return s.activities.List(ctx, since, params)
}

package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/storage"
)

type ActivityService struct {
	store storage.Storage

	// mu serializes completions with each other. Direct healthPoints writes
	// through UpdateUser do not take it.
	mu sync.Mutex
}

func NewActivityService(store storage.Storage) *ActivityService {
	return &ActivityService{store: store}
}

// Record stores a completion and credits its points to the user. A missing
// user does not fail the call: the completion is kept and no points move.
func (s *ActivityService) Record(ctx context.Context, userID uint, req *dto.RecordActivityRequest) (*models.UserActivity, error) {
	points := 0
	if req.PointsEarned != nil {
		points = *req.PointsEarned
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ua, err := s.store.CreateUserActivity(ctx, models.NewUserActivity{
		UserID:       userID,
		ActivityID:   req.ActivityID,
		PointsEarned: points,
		Date:         req.Date,
	})
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		slog.Warn("activity recorded for unknown user", "user_id", userID, "activity_id", req.ActivityID)
		return ua, nil
	}

	total := user.HealthPoints + points
	if _, err := s.store.UpdateUser(ctx, userID, models.UserUpdate{HealthPoints: &total}); err != nil {
		return nil, err
	}
	return ua, nil
}

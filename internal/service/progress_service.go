package service

import (
	"context"
	"time"

	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/util"
)

// ProgressUpdate carries the per-submission fields alongside a status
// change.
type ProgressUpdate struct {
	Score            *float64 `json:"score"`
	Attempts         int      `json:"attempts"`
	TimeSpentSeconds int      `json:"timeSpentSeconds"`
}

type ProgressService struct {
	invoker gateway.Invoker
	tokens  TokenSource

	now func() time.Time
}

func NewProgressService(invoker gateway.Invoker, tokens TokenSource) *ProgressService {
	return &ProgressService{invoker: invoker, tokens: tokens, now: time.Now}
}

func (s *ProgressService) GetUserProgress(ctx context.Context, userID string) ([]model.UserProgress, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return nil, util.ErrNotAuthenticated
	}

	var progress []model.UserProgress
	err := s.invoker.Invoke(ctx, gateway.OpGetProgress, map[string]any{
		"userId":      userID,
		"accessToken": token,
	}, &progress)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// UpdateLessonProgress records one submission. The completion timestamp
// is stamped here with local time rather than trusted from the remote,
// and the attempt count never goes below one once the lesson has been
// touched.
func (s *ProgressService) UpdateLessonProgress(ctx context.Context, userID, lessonID string, status model.ProgressStatus, update ProgressUpdate) (model.UserProgress, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.UserProgress{}, util.ErrNotAuthenticated
	}

	attempts := update.Attempts
	if attempts < 1 {
		attempts = 1
	}

	payload := map[string]any{
		"user_id":   userID,
		"lesson_id": lessonID,
		"status":    status,
		"score":     update.Score,
		"attempts":  attempts,
	}
	if update.TimeSpentSeconds > 0 {
		payload["time_spent_seconds"] = update.TimeSpentSeconds
	}
	if status == model.StatusCompleted {
		payload["completed_at"] = s.now().UTC().Format(time.RFC3339)
	}

	var progress model.UserProgress
	err := s.invoker.Invoke(ctx, gateway.OpUpdateProgress, map[string]any{
		"progress":    payload,
		"accessToken": token,
	}, &progress)
	if err != nil {
		return model.UserProgress{}, err
	}
	return progress, nil
}

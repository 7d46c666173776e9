package service

import (
	"context"

	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/util"
)

type AchievementService struct {
	invoker gateway.Invoker
	tokens  TokenSource
}

func NewAchievementService(invoker gateway.Invoker, tokens TokenSource) *AchievementService {
	return &AchievementService{invoker: invoker, tokens: tokens}
}

func (s *AchievementService) Available(ctx context.Context) ([]model.Achievement, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return nil, util.ErrNotAuthenticated
	}

	var achievements []model.Achievement
	err := s.invoker.Invoke(ctx, gateway.OpAvailableAch, map[string]any{
		"accessToken": token,
	}, &achievements)
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *AchievementService) ForUser(ctx context.Context, userID string) ([]model.Achievement, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return nil, util.ErrNotAuthenticated
	}

	var achievements []model.Achievement
	err := s.invoker.Invoke(ctx, gateway.OpUserAch, map[string]any{
		"userId":      userID,
		"accessToken": token,
	}, &achievements)
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

// CheckAndUnlock asks the remote to evaluate unlock conditions and
// returns whatever became newly unlocked.
func (s *AchievementService) CheckAndUnlock(ctx context.Context, userID string) ([]model.Achievement, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return nil, util.ErrNotAuthenticated
	}

	var unlocked []model.Achievement
	err := s.invoker.Invoke(ctx, gateway.OpCheckUnlockAch, map[string]any{
		"userId":      userID,
		"accessToken": token,
	}, &unlocked)
	if err != nil {
		return nil, err
	}
	return unlocked, nil
}

package service

import (
	"context"

	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/util"
)

type ProfileService struct {
	invoker gateway.Invoker
	tokens  TokenSource
}

func NewProfileService(invoker gateway.Invoker, tokens TokenSource) *ProfileService {
	return &ProfileService{invoker: invoker, tokens: tokens}
}

// GetUserProfile fetches the profile row and default-fills the counters
// the remote may return as null: XP and streaks to zero, level to one.
func (s *ProfileService) GetUserProfile(ctx context.Context, userID string) (model.UserProfile, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.UserProfile{}, util.ErrNotAuthenticated
	}

	var profile model.UserProfile
	err := s.invoker.Invoke(ctx, gateway.OpGetProfile, map[string]any{
		"userId":      userID,
		"accessToken": token,
	}, &profile)
	if err != nil {
		return model.UserProfile{}, err
	}

	fillDefault(&profile.TotalXP, 0)
	fillDefault(&profile.Level, 1)
	fillDefault(&profile.CurrentStreakDays, 0)
	fillDefault(&profile.LongestStreakDays, 0)
	return profile, nil
}

func fillDefault(field **int, value int) {
	if *field == nil {
		v := value
		*field = &v
	}
}

func (s *ProfileService) GetUserStatistics(ctx context.Context, userID string) (model.UserStatistics, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.UserStatistics{}, util.ErrNotAuthenticated
	}

	var stats model.UserStatistics
	err := s.invoker.Invoke(ctx, gateway.OpGetStatistics, map[string]any{
		"userId":      userID,
		"accessToken": token,
	}, &stats)
	if err != nil {
		return model.UserStatistics{}, err
	}
	return stats, nil
}

func (s *ProfileService) UpdateAvatar(ctx context.Context, userID, avatarURL string) error {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return util.ErrNotAuthenticated
	}

	return s.invoker.Invoke(ctx, gateway.OpUpdateAvatar, map[string]any{
		"userId":      userID,
		"avatarUrl":   avatarURL,
		"accessToken": token,
	}, nil)
}

func (s *ProfileService) UpdateUsername(ctx context.Context, userID, username string) error {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return util.ErrNotAuthenticated
	}

	return s.invoker.Invoke(ctx, gateway.OpUpdateUsername, map[string]any{
		"userId":      userID,
		"username":    username,
		"accessToken": token,
	}, nil)
}

package service

import (
	"context"

	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/util"
	"codeventure_gateway/pkg/logger"

	"go.uber.org/zap"
)

// CredentialStore is the persistent session store the auth flow writes
// to and everything else reads from.
type CredentialStore interface {
	TokenSource
	SaveTokens(model.AuthTokens) error
	Clear() error
}

type AuthService struct {
	invoker gateway.Invoker
	store   CredentialStore
}

func NewAuthService(invoker gateway.Invoker, store CredentialStore) *AuthService {
	return &AuthService{invoker: invoker, store: store}
}

// Login exchanges credentials for the token triple and persists it.
// The password travels to the remote as-is; hashing is the backend's
// job.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.AuthTokens, error) {
	var tokens model.AuthTokens
	err := s.invoker.Invoke(ctx, gateway.OpLoginUser, map[string]any{
		"email":    email,
		"password": password,
	}, &tokens)
	if err != nil {
		return model.AuthTokens{}, err
	}

	if err := s.store.SaveTokens(tokens); err != nil {
		return model.AuthTokens{}, err
	}

	logger.Log.Info("user logged in", zap.String("user_id", tokens.UserID))
	return tokens, nil
}

func (s *AuthService) Register(ctx context.Context, email, password, username string) (model.AuthTokens, error) {
	var tokens model.AuthTokens
	err := s.invoker.Invoke(ctx, gateway.OpRegisterUser, map[string]any{
		"email":    email,
		"password": password,
		"username": username,
	}, &tokens)
	if err != nil {
		return model.AuthTokens{}, err
	}

	if err := s.store.SaveTokens(tokens); err != nil {
		return model.AuthTokens{}, err
	}

	logger.Log.Info("user registered", zap.String("user_id", tokens.UserID))
	return tokens, nil
}

// Logout drops the local session. The remote keeps no session state
// for this client beyond token validity.
func (s *AuthService) Logout() error {
	return s.store.Clear()
}

func (s *AuthService) IsAuthenticated() bool {
	_, ok := s.store.AccessToken()
	return ok
}

// IsAdmin asks the remote whether the current session may author
// content.
func (s *AuthService) IsAdmin(ctx context.Context) (bool, error) {
	token, ok := s.store.AccessToken()
	if !ok {
		return false, util.ErrNotAuthenticated
	}

	var reply struct {
		IsAdmin bool `json:"is_admin"`
	}
	err := s.invoker.Invoke(ctx, gateway.OpCheckIsAdmin, map[string]any{
		"accessToken": token,
	}, &reply)
	if err != nil {
		return false, err
	}
	return reply.IsAdmin, nil
}

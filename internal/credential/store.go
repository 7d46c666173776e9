// Package credential persists the session triple (access token,
// refresh token, user id) the remote hands out at login. It is the only
// state this process keeps across restarts.
package credential

import (
	"time"

	"codeventure_gateway/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserID       = "user_id"
)

type record struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"not null"`
}

func (record) TableName() string {
	return "credentials"
}

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// SaveTokens upserts every field present on the response; partial
// refreshes (access token only) leave the other keys untouched.
func (s *Store) SaveTokens(tokens model.AuthTokens) error {
	pairs := map[string]string{
		keyAccessToken:  tokens.AccessToken,
		keyRefreshToken: tokens.RefreshToken,
		keyUserID:       tokens.UserID,
	}

	for key, value := range pairs {
		if value == "" {
			continue
		}
		err := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&record{Key: key, Value: value}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Clear removes the whole triple; the session is gone afterwards.
func (s *Store) Clear() error {
	return s.db.Where("key IN ?", []string{keyAccessToken, keyRefreshToken, keyUserID}).
		Delete(&record{}).Error
}

func (s *Store) get(key string) (string, bool) {
	var rec record
	if err := s.db.First(&rec, "key = ?", key).Error; err != nil {
		// A broken store reads the same as an absent credential;
		// read paths fall back, write paths refuse.
		return "", false
	}
	return rec.Value, rec.Value != ""
}

func (s *Store) AccessToken() (string, bool) {
	return s.get(keyAccessToken)
}

func (s *Store) RefreshToken() (string, bool) {
	return s.get(keyRefreshToken)
}

func (s *Store) UserID() (string, bool) {
	return s.get(keyUserID)
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.AccessToken()
	return ok
}

// TokenExpiresWithin inspects the stored access token's exp claim
// without verifying the signature (the signing key lives in the remote
// backend). Unparseable tokens report as expiring so the UI prompts a
// fresh login instead of hammering the gateway.
func (s *Store) TokenExpiresWithin(window time.Duration) bool {
	token, ok := s.AccessToken()
	if !ok {
		return true
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Until(exp.Time) < window
}

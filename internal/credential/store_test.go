package credential

import (
	"path/filepath"
	"testing"
	"time"

	"codeventure_gateway/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "credentials.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	store, err := NewStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSaveAndReadTokens(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveTokens(model.AuthTokens{
		AccessToken:  "at",
		RefreshToken: "rt",
		UserID:       "u1",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if got, ok := store.AccessToken(); !ok || got != "at" {
		t.Errorf("access token = %q, %v", got, ok)
	}
	if got, ok := store.RefreshToken(); !ok || got != "rt" {
		t.Errorf("refresh token = %q, %v", got, ok)
	}
	if got, ok := store.UserID(); !ok || got != "u1" {
		t.Errorf("user id = %q, %v", got, ok)
	}
	if !store.IsAuthenticated() {
		t.Errorf("expected authenticated after save")
	}
}

func TestPartialRefreshKeepsOtherKeys(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveTokens(model.AuthTokens{AccessToken: "at1", RefreshToken: "rt1", UserID: "u1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Token refresh hands back only a new access token.
	if err := store.SaveTokens(model.AuthTokens{AccessToken: "at2"}); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	if got, _ := store.AccessToken(); got != "at2" {
		t.Errorf("access token not replaced: %q", got)
	}
	if got, ok := store.RefreshToken(); !ok || got != "rt1" {
		t.Errorf("refresh token lost on partial save: %q, %v", got, ok)
	}
	if got, ok := store.UserID(); !ok || got != "u1" {
		t.Errorf("user id lost on partial save: %q, %v", got, ok)
	}
}

func TestClear(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveTokens(model.AuthTokens{AccessToken: "at", RefreshToken: "rt", UserID: "u1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if _, ok := store.AccessToken(); ok {
		t.Errorf("access token survived clear")
	}
	if store.IsAuthenticated() {
		t.Errorf("expected no session after clear")
	}
}

func TestEmptyStoreReadsAsAbsent(t *testing.T) {
	store := newTestStore(t)

	if _, ok := store.AccessToken(); ok {
		t.Errorf("fresh store should hold no access token")
	}
	if store.IsAuthenticated() {
		t.Errorf("fresh store should not be authenticated")
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestTokenExpiresWithin(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveTokens(model.AuthTokens{AccessToken: signedToken(t, time.Now().Add(time.Hour))}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if store.TokenExpiresWithin(5 * time.Minute) {
		t.Errorf("hour-long token reported as expiring within 5m")
	}
	if !store.TokenExpiresWithin(2 * time.Hour) {
		t.Errorf("hour-long token should expire within 2h")
	}

	if err := store.SaveTokens(model.AuthTokens{AccessToken: "not-a-jwt"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !store.TokenExpiresWithin(time.Minute) {
		t.Errorf("unparseable token should report as expiring")
	}
}

func TestTokenExpiresWithinNoToken(t *testing.T) {
	store := newTestStore(t)

	if !store.TokenExpiresWithin(time.Minute) {
		t.Errorf("absent token should report as expiring")
	}
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/service"
	"codeventure_gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type staticStore struct {
	token string
}

func (s staticStore) AccessToken() (string, bool) { return s.token, s.token != "" }
func (s staticStore) UserID() (string, bool)      { return "u1", s.token != "" }

func (s staticStore) SaveTokens(model.AuthTokens) error { return nil }
func (s staticStore) Clear() error                      { return nil }

type adminInvoker struct {
	isAdmin bool
	err     error
}

func (a adminInvoker) Invoke(_ context.Context, _ string, _ map[string]any, out any) error {
	if a.err != nil {
		return a.err
	}
	data, _ := json.Marshal(map[string]any{"is_admin": a.isAdmin})
	return json.Unmarshal(data, out)
}

func serve(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/x", handler, func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	return w
}

func TestSessionRequired(t *testing.T) {
	if w := serve(SessionRequired(staticStore{token: "at"})); w.Code != http.StatusOK {
		t.Errorf("expected pass-through with a session, got %d", w.Code)
	}
	if w := serve(SessionRequired(staticStore{})); w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a session, got %d", w.Code)
	}
}

func TestAdminRequired(t *testing.T) {
	auth := service.NewAuthService(adminInvoker{isAdmin: true}, staticStore{token: "at"})
	if w := serve(AdminRequired(auth)); w.Code != http.StatusOK {
		t.Errorf("expected pass-through for admin, got %d", w.Code)
	}

	auth = service.NewAuthService(adminInvoker{isAdmin: false}, staticStore{token: "at"})
	if w := serve(AdminRequired(auth)); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for non-admin, got %d", w.Code)
	}

	// A gateway failure reads as "not admin".
	auth = service.NewAuthService(adminInvoker{err: context.DeadlineExceeded}, staticStore{token: "at"})
	if w := serve(AdminRequired(auth)); w.Code != http.StatusForbidden {
		t.Errorf("expected 403 on gateway failure, got %d", w.Code)
	}
}

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"codeventure_gateway/internal/config"
	"codeventure_gateway/pkg/logger"

	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newTestClient(baseURL string) *Client {
	return NewClient(&config.GatewayConfig{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
	})
}

func TestInvokeRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		if r.URL.Path != "/commands/get_lesson_by_id" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type %q", ct)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("missing request id")
		}

		var args map[string]any
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			t.Errorf("decode args: %v", err)
		}
		if args["lessonId"] != "py-001" {
			t.Errorf("unexpected args %v", args)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"id": "py-001", "title": "Hello"})
	}))
	defer srv.Close()

	var reply struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	err := newTestClient(srv.URL).Invoke(context.Background(), OpGetLessonByID,
		map[string]any{"lessonId": "py-001"}, &reply)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if reply.ID != "py-001" || reply.Title != "Hello" {
		t.Errorf("unexpected reply %+v", reply)
	}
}

func TestInvokeNilArgsAndOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var args map[string]any
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			t.Errorf("expected an empty JSON object, got decode error %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).Invoke(context.Background(), OpDeleteLesson, nil, nil); err != nil {
		t.Fatalf("invoke: %v", err)
	}
}

func TestInvokeRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]any{"error": "admin privileges required"})
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).Invoke(context.Background(), OpDeleteCourse,
		map[string]any{"courseId": "c1"}, nil)
	if err == nil {
		t.Fatalf("expected error for 403 reply")
	}

	var gwErr *Error
	if !errors.As(err, &gwErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gwErr.Status != http.StatusForbidden {
		t.Errorf("unexpected status %d", gwErr.Status)
	}
	if gwErr.Operation != OpDeleteCourse {
		t.Errorf("unexpected operation %q", gwErr.Operation)
	}
	if gwErr.Message != "admin privileges required" {
		t.Errorf("unexpected message %q", gwErr.Message)
	}
}

func TestInvokeConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := newTestClient(srv.URL).Invoke(context.Background(), OpGetAllCourses, nil, nil)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var gwErr *Error
	if errors.As(err, &gwErr) {
		t.Errorf("transport failures must not masquerade as remote errors")
	}
}

func TestRemoteMessage(t *testing.T) {
	cases := []struct {
		payload string
		want    string
	}{
		{`{"message":"token expired"}`, "token expired"},
		{`{"error":"boom"}`, "boom"},
		{`plain text`, "plain text"},
		{``, "no error detail"},
	}

	for _, tc := range cases {
		if got := remoteMessage([]byte(tc.payload)); got != tc.want {
			t.Errorf("remoteMessage(%q) = %q, want %q", tc.payload, got, tc.want)
		}
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/util"
)

func progressPayload(t *testing.T, call invocation) map[string]any {
	t.Helper()
	payload, ok := call.Args["progress"].(map[string]any)
	if !ok {
		t.Fatalf("expected a progress payload, got %T", call.Args["progress"])
	}
	return payload
}

func TestUpdateLessonProgressStampsCompletion(t *testing.T) {
	inv := &fakeInvoker{}
	s := NewProgressService(inv, fakeTokens{token: "tok", userID: "u1"})

	fixed := time.Date(2025, 6, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))
	s.now = func() time.Time { return fixed }

	score := 95.0
	_, err := s.UpdateLessonProgress(context.Background(), "u1", "py-001",
		model.StatusCompleted, ProgressUpdate{Score: &score, Attempts: 2})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	call := inv.lastCall(t)
	if call.Operation != gateway.OpUpdateProgress {
		t.Errorf("unexpected operation %q", call.Operation)
	}

	payload := progressPayload(t, call)
	// Stamped locally, in UTC, regardless of the local zone.
	if got := payload["completed_at"]; got != "2025-06-01T11:30:00Z" {
		t.Errorf("unexpected completed_at %v", got)
	}
	if got := payload["attempts"]; got != 2 {
		t.Errorf("unexpected attempts %v", got)
	}
	if got := payload["status"]; got != model.StatusCompleted {
		t.Errorf("unexpected status %v", got)
	}
}

func TestUpdateLessonProgressFloorsAttempts(t *testing.T) {
	inv := &fakeInvoker{}
	s := NewProgressService(inv, fakeTokens{token: "tok"})

	_, err := s.UpdateLessonProgress(context.Background(), "u1", "py-001",
		model.StatusInProgress, ProgressUpdate{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	payload := progressPayload(t, inv.lastCall(t))
	if got := payload["attempts"]; got != 1 {
		t.Errorf("expected attempts floored to 1, got %v", got)
	}
	if _, present := payload["completed_at"]; present {
		t.Errorf("in-progress update must not carry completed_at")
	}
	if _, present := payload["time_spent_seconds"]; present {
		t.Errorf("zero time spent must be omitted")
	}
}

func TestUpdateLessonProgressRequiresSession(t *testing.T) {
	inv := &fakeInvoker{}
	s := NewProgressService(inv, fakeTokens{})

	_, err := s.UpdateLessonProgress(context.Background(), "u1", "py-001",
		model.StatusCompleted, ProgressUpdate{})
	if !errors.Is(err, util.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if inv.callCount() != 0 {
		t.Errorf("expected no invocations, got %d", inv.callCount())
	}
}

func TestGetUserProgress(t *testing.T) {
	inv := &fakeInvoker{}
	inv.handler = func(op string, args map[string]any, out any) error {
		if op != gateway.OpGetProgress {
			t.Errorf("unexpected operation %q", op)
		}
		if got := args["userId"]; got != "u1" {
			t.Errorf("unexpected userId %v", got)
		}
		return respond(out, []map[string]any{
			{"user_id": "u1", "lesson_id": "py-001", "status": "completed", "attempts": 3},
		})
	}
	s := NewProgressService(inv, fakeTokens{token: "tok"})

	progress, err := s.GetUserProgress(context.Background(), "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(progress) != 1 {
		t.Fatalf("expected one row, got %d", len(progress))
	}
	if progress[0].Status != model.StatusCompleted || progress[0].Attempts != 3 {
		t.Errorf("unexpected row %+v", progress[0])
	}
}

func TestGetUserProgressPropagatesRemoteError(t *testing.T) {
	inv := &fakeInvoker{handler: failingHandler}
	s := NewProgressService(inv, fakeTokens{token: "tok"})

	if _, err := s.GetUserProgress(context.Background(), "u1"); !errors.Is(err, errRemoteDown) {
		t.Fatalf("expected the remote error, got %v", err)
	}
}

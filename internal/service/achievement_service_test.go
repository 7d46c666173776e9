package service

import (
	"context"
	"errors"
	"testing"

	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/util"
)

func TestCheckAndUnlock(t *testing.T) {
	inv := &fakeInvoker{}
	inv.handler = func(op string, args map[string]any, out any) error {
		if op != gateway.OpCheckUnlockAch {
			t.Errorf("unexpected operation %q", op)
		}
		return respond(out, []map[string]any{
			{"id": "first-lesson", "title": "First Steps", "category": "courses", "xp_reward": 25},
		})
	}
	s := NewAchievementService(inv, fakeTokens{token: "tok"})

	unlocked, err := s.CheckAndUnlock(context.Background(), "u1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(unlocked) != 1 || unlocked[0].ID != "first-lesson" {
		t.Errorf("unexpected unlocks %+v", unlocked)
	}
	if unlocked[0].XPReward != 25 {
		t.Errorf("unexpected reward %d", unlocked[0].XPReward)
	}
}

func TestAchievementsRequireSession(t *testing.T) {
	inv := &fakeInvoker{}
	s := NewAchievementService(inv, fakeTokens{})
	ctx := context.Background()

	if _, err := s.Available(ctx); !errors.Is(err, util.ErrNotAuthenticated) {
		t.Errorf("Available: expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := s.ForUser(ctx, "u1"); !errors.Is(err, util.ErrNotAuthenticated) {
		t.Errorf("ForUser: expected ErrNotAuthenticated, got %v", err)
	}
	if _, err := s.CheckAndUnlock(ctx, "u1"); !errors.Is(err, util.ErrNotAuthenticated) {
		t.Errorf("CheckAndUnlock: expected ErrNotAuthenticated, got %v", err)
	}
	if inv.callCount() != 0 {
		t.Errorf("expected no invocations, got %d", inv.callCount())
	}
}

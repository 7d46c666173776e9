package model

import "time"

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not_started"
	StatusInProgress ProgressStatus = "in_progress"
	StatusCompleted  ProgressStatus = "completed"
)

// UserProgress records one user's state on one lesson. Created on first
// attempt, mutated on each submission, treated as immutable once
// CompletedAt is set.
type UserProgress struct {
	UserID           string         `json:"user_id"`
	LessonID         string         `json:"lesson_id"`
	Status           ProgressStatus `json:"status"`
	Score            *float64       `json:"score,omitempty"`
	Attempts         int            `json:"attempts"`
	CompletedAt      *time.Time     `json:"completed_at,omitempty"`
	TimeSpentSeconds int            `json:"time_spent_seconds,omitempty"`
}

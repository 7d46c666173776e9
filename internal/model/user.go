package model

// UserProfile mirrors the remote profile row. XP, level and streak
// counters may come back absent and are default-filled by the profile
// service before reaching the UI.
type UserProfile struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	Username          string `json:"username,omitempty"`
	AvatarURL         string `json:"avatar_url,omitempty"`
	TotalXP           *int   `json:"total_xp"`
	Level             *int   `json:"level"`
	CurrentStreakDays *int   `json:"current_streak_days"`
	LongestStreakDays *int   `json:"longest_streak_days"`
	JoinedAt          string `json:"joined_at"`
}

type UserStatistics struct {
	TotalLessonsCompleted int     `json:"total_lessons_completed"`
	TotalCoursesCompleted int     `json:"total_courses_completed"`
	TotalMinutesSpent     int     `json:"total_minutes_spent"`
	AverageScore          float64 `json:"average_score"`
	LessonsThisWeek       int     `json:"lessons_this_week"`
}

type AchievementCategory string

const (
	AchievementCourses AchievementCategory = "courses"
	AchievementStreak  AchievementCategory = "streak"
	AchievementXP      AchievementCategory = "xp"
	AchievementSpecial AchievementCategory = "special"
	AchievementSpeed   AchievementCategory = "speed"
)

type Achievement struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	IconURL     string              `json:"icon_url"`
	Category    AchievementCategory `json:"category"`
	Requirement int                 `json:"requirement"`
	XPReward    int                 `json:"xp_reward"`
}

// AuthTokens is the credential triple the remote hands back on login
// and registration.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
}

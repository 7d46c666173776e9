package gateway

import (
	"encoding/json"
	"fmt"

	"codeventure_gateway/internal/model"
)

// Wire types for entities coming back from the remote command
// interface. The remote is inconsistent about field casing (snake_case
// rows from the database, camelCase pass-throughs from older commands),
// so every aliased field is declared once here and resolved by the
// entity's adapter. Nothing outside this file knows about the aliases.

type CourseWire struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Difficulty  string       `json:"difficulty"`
	Language    string       `json:"language"`
	Modules     []ModuleWire `json:"modules"`
	Color       string       `json:"color"`

	IconURL           *string `json:"icon_url"`
	IconURLAlt        *string `json:"iconUrl"`
	EstimatedHours    *int    `json:"estimated_hours"`
	EstimatedHoursAlt *int    `json:"estimatedHours"`
	IsPublished       *bool   `json:"is_published"`
	IsPublishedAlt    *bool   `json:"isPublished"`
}

type ModuleWire struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Lessons     []LessonWire `json:"lessons"`

	OrderIndex    *int    `json:"order_index"`
	OrderIndexAlt *int    `json:"orderIndex"`
	IconEmoji     *string `json:"icon_emoji"`
	IconEmojiAlt  *string `json:"iconEmoji"`
}

type LessonWire struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Content     json.RawMessage `json:"content"`
	Language    string          `json:"language"`

	Type                *string `json:"lesson_type"`
	TypeAlt             *string `json:"lessonType"`
	XPReward            *int    `json:"xp_reward"`
	XPRewardAlt         *int    `json:"xpReward"`
	OrderIndex          *int    `json:"order_index"`
	OrderIndexAlt       *int    `json:"orderIndex"`
	IsLocked            *bool   `json:"is_locked"`
	IsLockedAlt         *bool   `json:"isLocked"`
	EstimatedMinutes    *int    `json:"estimated_minutes"`
	EstimatedMinutesAlt *int    `json:"estimatedMinutes"`
}

// pick resolves an aliased field: the canonical key wins, the alias is
// the fallback, absence yields the zero value.
func pick[T any](canonical, alias *T) T {
	if canonical != nil {
		return *canonical
	}
	if alias != nil {
		return *alias
	}
	var zero T
	return zero
}

func (w CourseWire) Normalize() (model.Course, error) {
	course := model.Course{
		ID:             w.ID,
		Title:          w.Title,
		Description:    w.Description,
		Difficulty:     model.Difficulty(w.Difficulty),
		Language:       w.Language,
		Color:          w.Color,
		IconURL:        pick(w.IconURL, w.IconURLAlt),
		EstimatedHours: pick(w.EstimatedHours, w.EstimatedHoursAlt),
		IsPublished:    pick(w.IsPublished, w.IsPublishedAlt),
	}

	for _, mw := range w.Modules {
		mod, err := mw.Normalize()
		if err != nil {
			return model.Course{}, fmt.Errorf("course %s: %w", w.ID, err)
		}
		course.Modules = append(course.Modules, mod)
	}
	return course, nil
}

func (w ModuleWire) Normalize() (model.Module, error) {
	mod := model.Module{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		OrderIndex:  pick(w.OrderIndex, w.OrderIndexAlt),
		IconEmoji:   pick(w.IconEmoji, w.IconEmojiAlt),
	}

	for _, lw := range w.Lessons {
		lesson, err := lw.Normalize()
		if err != nil {
			return model.Module{}, fmt.Errorf("module %s: %w", w.ID, err)
		}
		mod.Lessons = append(mod.Lessons, lesson)
	}
	return mod, nil
}

func (w LessonWire) Normalize() (model.Lesson, error) {
	lesson := model.Lesson{
		ID:               w.ID,
		Title:            w.Title,
		Description:      w.Description,
		Type:             model.LessonType(pick(w.Type, w.TypeAlt)),
		Language:         w.Language,
		XPReward:         pick(w.XPReward, w.XPRewardAlt),
		OrderIndex:       pick(w.OrderIndex, w.OrderIndexAlt),
		IsLocked:         pick(w.IsLocked, w.IsLockedAlt),
		EstimatedMinutes: pick(w.EstimatedMinutes, w.EstimatedMinutesAlt),
	}

	if len(w.Content) > 0 && string(w.Content) != "null" {
		content, err := model.UnmarshalLessonContent(lesson.Type, w.Content)
		if err != nil {
			return model.Lesson{}, fmt.Errorf("lesson %s: %w", w.ID, err)
		}
		lesson.Content = content
	}
	return lesson, nil
}

// CoursesFromWire normalizes a full course listing, preserving the
// remote ordering.
func CoursesFromWire(rows []CourseWire) ([]model.Course, error) {
	courses := make([]model.Course, 0, len(rows))
	for _, row := range rows {
		course, err := row.Normalize()
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// Outbound payload builders. Each mutation translates its input to the
// convention the corresponding remote command expects: course and
// module rows travel snake_case, lesson payloads keep the camelCase
// keys the original command interface grew up with.

func CreateCourseArgs(in model.CreateCourseInput, token string) map[string]any {
	return map[string]any{
		"course": map[string]any{
			"title":           in.Title,
			"description":     in.Description,
			"difficulty":      in.Difficulty,
			"language":        in.Language,
			"color":           in.Color,
			"order_index":     0,
			"is_published":    in.IsPublished,
			"estimated_hours": in.EstimatedHours,
			"icon_url":        in.IconURL,
		},
		"accessToken": token,
	}
}

func UpdateCourseArgs(courseID string, in model.UpdateCourseInput, token string) map[string]any {
	updates := map[string]any{}
	setIf(updates, "title", in.Title)
	setIf(updates, "description", in.Description)
	setIf(updates, "difficulty", in.Difficulty)
	setIf(updates, "language", in.Language)
	setIf(updates, "color", in.Color)
	setIf(updates, "isPublished", in.IsPublished)
	setIf(updates, "estimatedHours", in.EstimatedHours)
	setIf(updates, "iconUrl", in.IconURL)

	return map[string]any{
		"courseId":    courseID,
		"updates":     updates,
		"accessToken": token,
	}
}

func CreateModuleArgs(in model.CreateModuleInput, token string) map[string]any {
	return map[string]any{
		"module": map[string]any{
			"course_id":   in.CourseID,
			"title":       in.Title,
			"description": in.Description,
			"order_index": in.OrderIndex,
			"icon_emoji":  in.IconEmoji,
		},
		"accessToken": token,
	}
}

func UpdateModuleArgs(moduleID string, in model.UpdateModuleInput, token string) map[string]any {
	updates := map[string]any{}
	setIf(updates, "title", in.Title)
	setIf(updates, "description", in.Description)
	setIf(updates, "orderIndex", in.OrderIndex)
	setIf(updates, "iconEmoji", in.IconEmoji)

	return map[string]any{
		"moduleId":    moduleID,
		"updates":     updates,
		"accessToken": token,
	}
}

func CreateLessonArgs(in model.CreateLessonInput, token string) (map[string]any, error) {
	content, err := model.MarshalLessonContent(in.Content)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"lesson": map[string]any{
			"module_id":        in.ModuleID,
			"title":            in.Title,
			"description":      in.Description,
			"lessonType":       in.Type,
			"content":          json.RawMessage(content),
			"language":         in.Language,
			"xpReward":         in.XPReward,
			"orderIndex":       in.OrderIndex,
			"isLocked":         in.IsLocked,
			"estimatedMinutes": in.EstimatedMinutes,
		},
		"accessToken": token,
	}, nil
}

func UpdateLessonArgs(lessonID string, in model.UpdateLessonInput, token string) (map[string]any, error) {
	updates := map[string]any{}
	setIf(updates, "title", in.Title)
	setIf(updates, "description", in.Description)
	setIf(updates, "lessonType", in.Type)
	setIf(updates, "language", in.Language)
	setIf(updates, "xpReward", in.XPReward)
	setIf(updates, "orderIndex", in.OrderIndex)
	setIf(updates, "isLocked", in.IsLocked)
	setIf(updates, "estimatedMinutes", in.EstimatedMinutes)

	if in.Content != nil {
		content, err := model.MarshalLessonContent(in.Content)
		if err != nil {
			return nil, err
		}
		updates["content"] = json.RawMessage(content)
	}

	return map[string]any{
		"lessonId":    lessonID,
		"updates":     updates,
		"accessToken": token,
	}, nil
}

func setIf[T any](args map[string]any, key string, value *T) {
	if value != nil {
		args[key] = *value
	}
}

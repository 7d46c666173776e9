package gateway

import (
	"encoding/json"
	"testing"

	"codeventure_gateway/internal/model"
)

func TestNormalizeResolvesAliases(t *testing.T) {
	raw := []byte(`{
		"id": "c1",
		"title": "Python",
		"difficulty": "beginner",
		"language": "python",
		"estimated_hours": 4,
		"isPublished": true,
		"modules": [{
			"id": "m1",
			"title": "Basics",
			"orderIndex": 2,
			"icon_emoji": "🐍",
			"lessons": [{
				"id": "l1",
				"title": "Print",
				"lessonType": "exercise",
				"language": "python",
				"xp_reward": 10,
				"is_locked": true,
				"content": {"instruction": "print it", "starterCode": "", "solution": "print(1)"}
			}]
		}]
	}`)

	var wire CourseWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	course, err := wire.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	if course.EstimatedHours != 4 {
		t.Errorf("snake_case estimated_hours not picked: %d", course.EstimatedHours)
	}
	if !course.IsPublished {
		t.Errorf("camelCase isPublished not picked")
	}

	mod := course.Modules[0]
	if mod.OrderIndex != 2 || mod.IconEmoji != "🐍" {
		t.Errorf("module aliases not resolved: %+v", mod)
	}

	lesson := mod.Lessons[0]
	if lesson.Type != model.LessonExercise {
		t.Errorf("lessonType alias not resolved: %q", lesson.Type)
	}
	if lesson.XPReward != 10 || !lesson.IsLocked {
		t.Errorf("lesson aliases not resolved: %+v", lesson)
	}
	if _, ok := lesson.Content.(model.ExerciseContent); !ok {
		t.Errorf("expected ExerciseContent, got %T", lesson.Content)
	}
}

func TestNormalizeCanonicalWinsOverAlias(t *testing.T) {
	raw := []byte(`{"id":"l1","title":"t","lesson_type":"theory","lessonType":"quiz","language":"python"}`)

	var wire LessonWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	lesson, err := wire.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if lesson.Type != model.LessonTheory {
		t.Errorf("expected canonical lesson_type to win, got %q", lesson.Type)
	}
}

func TestNormalizeAbsentFieldsZero(t *testing.T) {
	var wire LessonWire
	if err := json.Unmarshal([]byte(`{"id":"l1","title":"t","lesson_type":"theory","language":"python"}`), &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	lesson, err := wire.Normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if lesson.XPReward != 0 || lesson.OrderIndex != 0 || lesson.IsLocked {
		t.Errorf("absent fields should be zero valued: %+v", lesson)
	}
	if lesson.Content != nil {
		t.Errorf("absent content should stay nil, got %T", lesson.Content)
	}
}

func TestNormalizeRejectsContentTagMismatch(t *testing.T) {
	raw := []byte(`{"id":"l1","title":"t","lesson_type":"theory","language":"python","content":{"type":"quiz"}}`)

	var wire LessonWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, err := wire.Normalize(); err == nil {
		t.Fatalf("expected error for content tag mismatch")
	}
}

func TestUpdateCourseArgsOnlySetFields(t *testing.T) {
	title := "New Title"
	published := true

	args := UpdateCourseArgs("c1", model.UpdateCourseInput{
		Title:       &title,
		IsPublished: &published,
	}, "tok")

	if args["courseId"] != "c1" || args["accessToken"] != "tok" {
		t.Errorf("unexpected envelope %v", args)
	}

	updates := args["updates"].(map[string]any)
	if updates["title"] != "New Title" || updates["isPublished"] != true {
		t.Errorf("set fields missing: %v", updates)
	}
	if _, present := updates["description"]; present {
		t.Errorf("unset fields must be omitted: %v", updates)
	}
	if len(updates) != 2 {
		t.Errorf("expected exactly 2 updates, got %v", updates)
	}
}

func TestCreateCourseArgsSnakeCase(t *testing.T) {
	args := CreateCourseArgs(model.CreateCourseInput{
		Title:          "Python",
		Difficulty:     model.Beginner,
		Language:       model.LangPython,
		EstimatedHours: 6,
		IsPublished:    true,
	}, "tok")

	course := args["course"].(map[string]any)
	if course["estimated_hours"] != 6 || course["is_published"] != true {
		t.Errorf("expected snake_case course payload, got %v", course)
	}
}

func TestCreateLessonArgsEmbedsTaggedContent(t *testing.T) {
	args, err := CreateLessonArgs(model.CreateLessonInput{
		ModuleID: "m1",
		Title:    "Print",
		Type:     model.LessonExercise,
		Language: model.LangPython,
		Content:  model.ExerciseContent{Instruction: "print it"},
	}, "tok")
	if err != nil {
		t.Fatalf("build args: %v", err)
	}

	lesson := args["lesson"].(map[string]any)
	if lesson["module_id"] != "m1" {
		t.Errorf("expected snake_case module_id, got %v", lesson)
	}

	content := lesson["content"].(json.RawMessage)
	var tag struct {
		Type model.LessonType `json:"type"`
	}
	if err := json.Unmarshal(content, &tag); err != nil {
		t.Fatalf("decode content: %v", err)
	}
	if tag.Type != model.LessonExercise {
		t.Errorf("content missing type tag: %s", content)
	}
}

func TestUpdateLessonArgsSkipsNilContent(t *testing.T) {
	title := "t"
	args, err := UpdateLessonArgs("l1", model.UpdateLessonInput{Title: &title}, "tok")
	if err != nil {
		t.Fatalf("build args: %v", err)
	}

	updates := args["updates"].(map[string]any)
	if _, present := updates["content"]; present {
		t.Errorf("nil content must not produce an update: %v", updates)
	}
}

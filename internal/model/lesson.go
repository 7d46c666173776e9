package model

import (
	"encoding/json"
	"fmt"
)

type LessonType string

const (
	LessonTheory   LessonType = "theory"
	LessonExercise LessonType = "exercise"
	LessonQuiz     LessonType = "quiz"
	LessonProject  LessonType = "project"
)

// Languages a lesson can teach. HTML and CSS are markup languages and
// take the containment path in code validation.
const (
	LangPython     = "python"
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangHTML       = "html"
	LangCSS        = "css"
)

// LessonContent is the sealed union of the four lesson payloads. The
// marker method ties each variant to its lesson type, so the type tag
// and the payload can never disagree in a decoded Lesson.
type LessonContent interface {
	lessonType() LessonType
}

// ContentType reports the lesson type a content payload belongs to.
func ContentType(c LessonContent) LessonType {
	if c == nil {
		return ""
	}
	return c.lessonType()
}

type BlockKind string

const (
	BlockText    BlockKind = "text"
	BlockCode    BlockKind = "code"
	BlockTip     BlockKind = "tip"
	BlockWarning BlockKind = "warning"
	BlockInfo    BlockKind = "info"
)

type ContentBlock struct {
	Kind     BlockKind `json:"type"`
	Content  string    `json:"content"`
	Language string    `json:"language,omitempty"`
	Code     string    `json:"code,omitempty"`
}

type TheoryContent struct {
	Blocks []ContentBlock `json:"blocks"`
}

type TestCase struct {
	Input          string `json:"input,omitempty"`
	ExpectedOutput string `json:"expectedOutput"`
	Description    string `json:"description,omitempty"`
}

type ExerciseContent struct {
	Instruction        string     `json:"instruction"`
	StarterCode        string     `json:"starterCode"`
	Solution           string     `json:"solution"`
	Hint               string     `json:"hint,omitempty"`
	ExampleCode        string     `json:"exampleCode,omitempty"`
	ExampleDescription string     `json:"exampleDescription,omitempty"`
	TestCases          []TestCase `json:"testCases,omitempty"`
}

type QuizOption struct {
	Text        string `json:"text"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation,omitempty"`
}

type QuizContent struct {
	Question    string       `json:"question"`
	Options     []QuizOption `json:"options"`
	Explanation string       `json:"explanation,omitempty"`
}

// WellFormed reports whether exactly one option is marked correct.
func (q QuizContent) WellFormed() bool {
	correct := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			correct++
		}
	}
	return correct == 1
}

type ProjectContent struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	StarterCode  string   `json:"starterCode,omitempty"`
	Hints        []string `json:"hints,omitempty"`
}

func (TheoryContent) lessonType() LessonType   { return LessonTheory }
func (ExerciseContent) lessonType() LessonType { return LessonExercise }
func (QuizContent) lessonType() LessonType     { return LessonQuiz }
func (ProjectContent) lessonType() LessonType  { return LessonProject }

// Lesson is a single learning unit. Content always matches Type; the
// JSON codec rejects documents where the two disagree.
type Lesson struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	Type             LessonType    `json:"lessonType"`
	Content          LessonContent `json:"content"`
	Language         string        `json:"language"`
	XPReward         int           `json:"xpReward"`
	OrderIndex       int           `json:"orderIndex"`
	IsLocked         bool          `json:"isLocked,omitempty"`
	EstimatedMinutes int           `json:"estimatedMinutes,omitempty"`
}

// MarshalLessonContent encodes a content payload with its "type" tag
// injected, matching the wire shape the UI and the remote expect.
func MarshalLessonContent(c LessonContent) ([]byte, error) {
	switch v := c.(type) {
	case TheoryContent:
		return json.Marshal(struct {
			Type LessonType `json:"type"`
			TheoryContent
		}{LessonTheory, v})
	case ExerciseContent:
		return json.Marshal(struct {
			Type LessonType `json:"type"`
			ExerciseContent
		}{LessonExercise, v})
	case QuizContent:
		return json.Marshal(struct {
			Type LessonType `json:"type"`
			QuizContent
		}{LessonQuiz, v})
	case ProjectContent:
		return json.Marshal(struct {
			Type LessonType `json:"type"`
			ProjectContent
		}{LessonProject, v})
	default:
		return nil, fmt.Errorf("unknown lesson content %T", c)
	}
}

// UnmarshalLessonContent decodes a content payload for the given lesson
// type. If the document carries its own "type" tag it must agree.
func UnmarshalLessonContent(t LessonType, data []byte) (LessonContent, error) {
	var tag struct {
		Type LessonType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, err
	}
	if tag.Type != "" && tag.Type != t {
		return nil, fmt.Errorf("lesson content tag %q does not match lesson type %q", tag.Type, t)
	}

	switch t {
	case LessonTheory:
		var v TheoryContent
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case LessonExercise:
		var v ExerciseContent
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case LessonQuiz:
		var v QuizContent
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	case LessonProject:
		var v ProjectContent
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown lesson type %q", t)
	}
}

func (l Lesson) MarshalJSON() ([]byte, error) {
	content := json.RawMessage("null")
	if l.Content != nil {
		encoded, err := MarshalLessonContent(l.Content)
		if err != nil {
			return nil, fmt.Errorf("lesson %s: %w", l.ID, err)
		}
		content = encoded
	}

	type alias Lesson
	return json.Marshal(struct {
		alias
		Content json.RawMessage `json:"content"`
	}{alias(l), content})
}

func (l *Lesson) UnmarshalJSON(data []byte) error {
	type alias Lesson
	aux := struct {
		*alias
		Content json.RawMessage `json:"content"`
	}{alias: (*alias)(l)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Content) == 0 || string(aux.Content) == "null" {
		l.Content = nil
		return nil
	}

	content, err := UnmarshalLessonContent(l.Type, aux.Content)
	if err != nil {
		return fmt.Errorf("lesson %s: %w", l.ID, err)
	}
	l.Content = content
	return nil
}

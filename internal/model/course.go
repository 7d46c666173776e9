package model

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Course is the top-level learning unit. Module order is the course
// table-of-contents order and must be preserved by every layer.
type Course struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Difficulty     Difficulty `json:"difficulty"`
	Language       string     `json:"language"`
	Modules        []Module   `json:"modules"`
	Color          string     `json:"color"`
	IconURL        string     `json:"iconUrl,omitempty"`
	EstimatedHours int        `json:"estimatedHours,omitempty"`
	IsPublished    bool       `json:"isPublished"`
}

// Module groups lessons inside a course. OrderIndex drives display and
// "next lesson" traversal.
type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
	OrderIndex  int      `json:"orderIndex"`
	IconEmoji   string   `json:"iconEmoji,omitempty"`
}

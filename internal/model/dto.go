package model

// Mutation inputs accepted from the UI. Pointer fields on the update
// inputs distinguish "leave unchanged" from an explicit zero value;
// the gateway codec translates set fields to the remote convention.

type CreateCourseInput struct {
	Title          string     `json:"title" binding:"required"`
	Description    string     `json:"description"`
	Difficulty     Difficulty `json:"difficulty" binding:"required,oneof=beginner intermediate advanced"`
	Language       string     `json:"language" binding:"required"`
	Color          string     `json:"color"`
	IsPublished    bool       `json:"isPublished"`
	EstimatedHours int        `json:"estimatedHours"`
	IconURL        string     `json:"iconUrl"`
}

type UpdateCourseInput struct {
	Title          *string     `json:"title"`
	Description    *string     `json:"description"`
	Difficulty     *Difficulty `json:"difficulty"`
	Language       *string     `json:"language"`
	Color          *string     `json:"color"`
	IsPublished    *bool       `json:"isPublished"`
	EstimatedHours *int        `json:"estimatedHours"`
	IconURL        *string     `json:"iconUrl"`
}

type CreateModuleInput struct {
	CourseID    string `json:"courseId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
	IconEmoji   string `json:"iconEmoji"`
}

type UpdateModuleInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
	IconEmoji   *string `json:"iconEmoji"`
}

type CreateLessonInput struct {
	ModuleID         string        `json:"moduleId" binding:"required"`
	Title            string        `json:"title" binding:"required"`
	Description      string        `json:"description"`
	Type             LessonType    `json:"lessonType" binding:"required,oneof=theory exercise quiz project"`
	Content          LessonContent `json:"-"`
	Language         string        `json:"language" binding:"required"`
	XPReward         int           `json:"xpReward"`
	OrderIndex       int           `json:"orderIndex"`
	IsLocked         bool          `json:"isLocked"`
	EstimatedMinutes int           `json:"estimatedMinutes"`
}

type UpdateLessonInput struct {
	Title            *string       `json:"title"`
	Description      *string       `json:"description"`
	Type             *LessonType   `json:"lessonType"`
	Content          LessonContent `json:"-"`
	Language         *string       `json:"language"`
	XPReward         *int          `json:"xpReward"`
	OrderIndex       *int          `json:"orderIndex"`
	IsLocked         *bool         `json:"isLocked"`
	EstimatedMinutes *int          `json:"estimatedMinutes"`
}

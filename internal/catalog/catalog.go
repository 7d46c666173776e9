// Package catalog ships the built-in course data the client falls back
// to when no session exists or the remote command interface is down.
// The data is hand-authored, deterministic and never mutated; callers
// must treat everything returned here as read-only.
package catalog

import "codeventure_gateway/internal/model"

var pythonCourse = model.Course{
	ID:             "course-python",
	Title:          "Python Fundamentals",
	Description:    "Start programming with Python: printing, variables, loops and your first project.",
	Difficulty:     model.Beginner,
	Language:       model.LangPython,
	Color:          "#3776AB",
	EstimatedHours: 6,
	IsPublished:    true,
	Modules: []model.Module{
		{
			ID:          "py-mod-1",
			Title:       "First Steps",
			Description: "Print text, store values and check what you learned.",
			OrderIndex:  1,
			IconEmoji:   "🐍",
			Lessons: []model.Lesson{
				{
					ID:               "py-001",
					Title:            "Your First Python Program",
					Description:      "Learn to print text to the console",
					Type:             model.LessonExercise,
					Language:         model.LangPython,
					XPReward:         10,
					OrderIndex:       1,
					EstimatedMinutes: 5,
					Content: model.ExerciseContent{
						Instruction: "Write code that prints the text: Hello World",
						StarterCode: "# Write code that prints \"Hello World\"\nprint(\"Hello World\")",
						Solution:    "print(\"Hello World\")",
						Hint:        "Use the print() function and put the text in quotes",
						TestCases: []model.TestCase{
							{ExpectedOutput: "Hello World", Description: "The program should print exactly: Hello World"},
						},
					},
				},
				{
					ID:               "py-002",
					Title:            "Variables in Python",
					Description:      "Learn the basics of variables",
					Type:             model.LessonExercise,
					Language:         model.LangPython,
					XPReward:         15,
					OrderIndex:       2,
					EstimatedMinutes: 8,
					Content: model.ExerciseContent{
						Instruction: "Create a variable 'name' with the value 'Python' and print it using print()",
						StarterCode: "# Create the variable name and print it\n",
						Solution:    "name = \"Python\"\nprint(name)",
						Hint:        "Remember: variable_name = value, then print(variable_name)",
						TestCases: []model.TestCase{
							{ExpectedOutput: "Python", Description: "The program should print: Python"},
						},
					},
				},
				{
					ID:               "py-003",
					Title:            "Quiz: Python Basics",
					Description:      "Check what you have learned",
					Type:             model.LessonQuiz,
					Language:         model.LangPython,
					XPReward:         10,
					OrderIndex:       3,
					EstimatedMinutes: 3,
					Content: model.QuizContent{
						Question: "Which function prints text to the console?",
						Options: []model.QuizOption{
							{Text: "console.log()", IsCorrect: false, Explanation: "That one belongs to JavaScript!"},
							{Text: "print()", IsCorrect: true, Explanation: "Exactly! print() is Python's basic output function."},
							{Text: "echo()", IsCorrect: false, Explanation: "That is a bash/PHP command."},
							{Text: "printf()", IsCorrect: false, Explanation: "That is the C function."},
						},
						Explanation: "In Python the print() function writes text to the console.",
					},
				},
			},
		},
		{
			ID:          "py-mod-2",
			Title:       "Control Flow",
			Description: "Repeat work with loops and build something real.",
			OrderIndex:  2,
			IconEmoji:   "🔁",
			Lessons: []model.Lesson{
				{
					ID:         "py-004",
					Title:      "Loops in Python",
					Type:       model.LessonTheory,
					Language:   model.LangPython,
					XPReward:   20,
					OrderIndex: 1,
					Content: model.TheoryContent{
						Blocks: []model.ContentBlock{
							{Kind: model.BlockText, Content: "A for loop repeats a block of code for every element of a sequence."},
							{Kind: model.BlockCode, Content: "Printing the numbers 0 to 4:", Language: model.LangPython, Code: "for i in range(5):\n    print(i)"},
							{Kind: model.BlockTip, Content: "range(n) counts from 0 up to n-1, not up to n."},
						},
					},
				},
				{
					ID:               "py-005",
					Title:            "Project: Greeting Card",
					Type:             model.LessonProject,
					Language:         model.LangPython,
					XPReward:         40,
					OrderIndex:       2,
					EstimatedMinutes: 25,
					Content: model.ProjectContent{
						Title:       "Greeting Card Generator",
						Description: "Combine print, variables and loops into a small program that prints a framed greeting.",
						Requirements: []string{
							"Store the recipient name in a variable",
							"Print a decorative border using a loop",
							"Print a greeting that includes the name",
						},
						StarterCode: "name = \"World\"\n# your card here\n",
						Hints:       []string{"Multiply a string by a number to repeat it", "f-strings make mixing text and variables easy"},
					},
				},
			},
		},
	},
}

var javascriptCourse = model.Course{
	ID:             "course-javascript",
	Title:          "JavaScript Fundamentals",
	Description:    "Learn the language of the web: logging, values and a first quiz.",
	Difficulty:     model.Beginner,
	Language:       model.LangJavaScript,
	Color:          "#F7DF1E",
	EstimatedHours: 5,
	IsPublished:    true,
	Modules: []model.Module{
		{
			ID:          "js-mod-1",
			Title:       "Getting Started",
			Description: "Console output and your first values.",
			OrderIndex:  1,
			IconEmoji:   "✨",
			Lessons: []model.Lesson{
				{
					ID:               "js-001",
					Title:            "Hello Console",
					Description:      "Print text with console.log",
					Type:             model.LessonExercise,
					Language:         model.LangJavaScript,
					XPReward:         10,
					OrderIndex:       1,
					EstimatedMinutes: 5,
					Content: model.ExerciseContent{
						Instruction: "Write code that logs the text: Hello World",
						StarterCode: "// Log \"Hello World\" to the console\n",
						Solution:    "console.log(\"Hello World\")",
						Hint:        "Use console.log() and put the text in quotes",
						TestCases: []model.TestCase{
							{ExpectedOutput: "Hello World", Description: "The program should log exactly: Hello World"},
						},
					},
				},
				{
					ID:               "js-002",
					Title:            "Quiz: JavaScript Basics",
					Type:             model.LessonQuiz,
					Language:         model.LangJavaScript,
					XPReward:         10,
					OrderIndex:       2,
					EstimatedMinutes: 3,
					Content: model.QuizContent{
						Question: "Which keyword declares a block-scoped variable?",
						Options: []model.QuizOption{
							{Text: "var", IsCorrect: false, Explanation: "var is function-scoped."},
							{Text: "let", IsCorrect: true, Explanation: "Right, let is block-scoped."},
							{Text: "def", IsCorrect: false, Explanation: "def belongs to Python."},
						},
						Explanation: "let (and const) declare block-scoped bindings.",
					},
				},
			},
		},
	},
}

var allCourses = []model.Course{pythonCourse, javascriptCourse}

// Courses returns the built-in courses in stable catalog order.
func Courses() []model.Course {
	return allCourses
}

// FindLessonByID searches every module of every built-in course.
func FindLessonByID(id string) (model.Lesson, bool) {
	for _, course := range allCourses {
		for _, mod := range course.Modules {
			for _, lesson := range mod.Lessons {
				if lesson.ID == id {
					return lesson, true
				}
			}
		}
	}
	return model.Lesson{}, false
}

package util

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated - access token missing")
	ErrNotAdmin         = errors.New("admin privileges required")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrCourseNotFound   = errors.New("course not found")
	ErrEmptyQuery       = errors.New("search query must not be empty")
	ErrUnknownLanguage  = errors.New("unsupported lesson language")
)

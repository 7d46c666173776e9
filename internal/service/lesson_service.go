package service

import (
	"context"
	"sync"

	"codeventure_gateway/internal/catalog"
	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/util"
	"codeventure_gateway/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TokenSource supplies the stored session credential. Injected instead
// of read from ambient storage so services are testable and multiple
// sessions stay possible.
type TokenSource interface {
	AccessToken() (string, bool)
	UserID() (string, bool)
}

// courseCache holds the full course aggregates keyed by id, in listing
// order. It is owned exclusively by LessonService: populated on a
// successful fetch, cleared wholesale on any mutation or explicit
// eviction, and never handed out for mutation.
type courseCache struct {
	mu      sync.RWMutex
	courses []model.Course
	index   map[string]int
}

func (c *courseCache) List() ([]model.Course, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.courses) == 0 {
		return nil, false
	}
	out := make([]model.Course, len(c.courses))
	copy(out, c.courses)
	return out, true
}

func (c *courseCache) Replace(courses []model.Course) {
	index := make(map[string]int, len(courses))
	for i, course := range courses {
		index[course.ID] = i
	}

	c.mu.Lock()
	c.courses = courses
	c.index = index
	c.mu.Unlock()
}

func (c *courseCache) Clear() {
	c.mu.Lock()
	c.courses = nil
	c.index = nil
	c.mu.Unlock()
}

func (c *courseCache) FindLesson(id string) (model.Lesson, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, course := range c.courses {
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

// LessonService is the single source of truth for course content from
// the UI's perspective: it hides whether data came from the remote
// command interface, the in-memory cache, or the built-in catalog.
type LessonService struct {
	invoker gateway.Invoker
	tokens  TokenSource
	cache   courseCache
	fetch   singleflight.Group
}

func NewLessonService(invoker gateway.Invoker, tokens TokenSource) *LessonService {
	return &LessonService{invoker: invoker, tokens: tokens}
}

// GetCourses never fails from the caller's point of view: without a
// session or when the remote is down it serves the built-in catalog.
// Concurrent cold-cache callers share one upstream fetch.
func (s *LessonService) GetCourses(ctx context.Context, forceRefresh bool) []model.Course {
	if !forceRefresh {
		if cached, ok := s.cache.List(); ok {
			return cached
		}
	}

	token, ok := s.tokens.AccessToken()
	if !ok {
		logger.Log.Warn("no access token, serving built-in courses")
		return catalog.Courses()
	}

	v, err, _ := s.fetch.Do("courses", func() (any, error) {
		return s.fetchCourses(ctx, token)
	})
	if err != nil {
		// Absorbed: the cache keeps its prior state and the caller
		// gets the catalog instead of an error.
		logger.Log.Warn("failed to fetch courses, falling back to built-in catalog", zap.Error(err))
		return catalog.Courses()
	}
	return v.([]model.Course)
}

func (s *LessonService) fetchCourses(ctx context.Context, token string) ([]model.Course, error) {
	var rows []gateway.CourseWire
	err := s.invoker.Invoke(ctx, gateway.OpGetAllCourses, map[string]any{
		"accessToken": token,
	}, &rows)
	if err != nil {
		return nil, err
	}

	courses, err := gateway.CoursesFromWire(rows)
	if err != nil {
		return nil, err
	}

	s.cache.Replace(courses)
	return courses, nil
}

// GetLessonByID prefers the remote copy when a session exists and falls
// back to a local search (cache first, then catalog) when it does not
// or when the remote call fails. Absence is a normal result, not an
// error.
func (s *LessonService) GetLessonByID(ctx context.Context, lessonID string) (model.Lesson, bool) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return s.findLessonLocally(lessonID)
	}

	var row gateway.LessonWire
	err := s.invoker.Invoke(ctx, gateway.OpGetLessonByID, map[string]any{
		"lessonId":    lessonID,
		"accessToken": token,
	}, &row)
	if err != nil {
		logger.Log.Warn("failed to fetch lesson, searching locally",
			zap.String("lesson_id", lessonID), zap.Error(err))
		return s.findLessonLocally(lessonID)
	}

	lesson, err := row.Normalize()
	if err != nil {
		logger.Log.Warn("malformed lesson from remote, searching locally",
			zap.String("lesson_id", lessonID), zap.Error(err))
		return s.findLessonLocally(lessonID)
	}
	return lesson, true
}

func (s *LessonService) findLessonLocally(lessonID string) (model.Lesson, bool) {
	if lesson, ok := s.cache.FindLesson(lessonID); ok {
		return lesson, true
	}
	return catalog.FindLessonByID(lessonID)
}

// SearchLessons queries the remote full-text index. Requires a session.
func (s *LessonService) SearchLessons(ctx context.Context, query string) ([]model.Lesson, error) {
	if query == "" {
		return nil, util.ErrEmptyQuery
	}
	token, ok := s.tokens.AccessToken()
	if !ok {
		return nil, util.ErrNotAuthenticated
	}

	var rows []gateway.LessonWire
	err := s.invoker.Invoke(ctx, gateway.OpSearchLessons, map[string]any{
		"query":       query,
		"accessToken": token,
	}, &rows)
	if err != nil {
		return nil, err
	}

	lessons := make([]model.Lesson, 0, len(rows))
	for _, row := range rows {
		lesson, err := row.Normalize()
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, lesson)
	}
	return lessons, nil
}

// Mutations. Each requires a session, performs exactly one remote
// invocation, and clears the whole cache on success so the next
// GetCourses refetches. The cache is never patched optimistically.

func (s *LessonService) CreateCourse(ctx context.Context, in model.CreateCourseInput) (model.Course, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.Course{}, util.ErrNotAuthenticated
	}

	var row gateway.CourseWire
	if err := s.invoker.Invoke(ctx, gateway.OpCreateCourse, gateway.CreateCourseArgs(in, token), &row); err != nil {
		return model.Course{}, err
	}
	s.cache.Clear()

	return row.Normalize()
}

func (s *LessonService) UpdateCourse(ctx context.Context, courseID string, in model.UpdateCourseInput) (model.Course, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.Course{}, util.ErrNotAuthenticated
	}

	var row gateway.CourseWire
	if err := s.invoker.Invoke(ctx, gateway.OpUpdateCourse, gateway.UpdateCourseArgs(courseID, in, token), &row); err != nil {
		return model.Course{}, err
	}
	s.cache.Clear()

	return row.Normalize()
}

func (s *LessonService) DeleteCourse(ctx context.Context, courseID string) error {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return util.ErrNotAuthenticated
	}

	err := s.invoker.Invoke(ctx, gateway.OpDeleteCourse, map[string]any{
		"courseId":    courseID,
		"accessToken": token,
	}, nil)
	if err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

func (s *LessonService) CreateModule(ctx context.Context, in model.CreateModuleInput) (model.Module, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.Module{}, util.ErrNotAuthenticated
	}

	var row gateway.ModuleWire
	if err := s.invoker.Invoke(ctx, gateway.OpCreateModule, gateway.CreateModuleArgs(in, token), &row); err != nil {
		return model.Module{}, err
	}
	s.cache.Clear()

	return row.Normalize()
}

func (s *LessonService) UpdateModule(ctx context.Context, moduleID string, in model.UpdateModuleInput) (model.Module, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.Module{}, util.ErrNotAuthenticated
	}

	var row gateway.ModuleWire
	if err := s.invoker.Invoke(ctx, gateway.OpUpdateModule, gateway.UpdateModuleArgs(moduleID, in, token), &row); err != nil {
		return model.Module{}, err
	}
	s.cache.Clear()

	return row.Normalize()
}

func (s *LessonService) DeleteModule(ctx context.Context, moduleID string) error {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return util.ErrNotAuthenticated
	}

	err := s.invoker.Invoke(ctx, gateway.OpDeleteModule, map[string]any{
		"moduleId":    moduleID,
		"accessToken": token,
	}, nil)
	if err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

func (s *LessonService) CreateLesson(ctx context.Context, in model.CreateLessonInput) (model.Lesson, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.Lesson{}, util.ErrNotAuthenticated
	}

	args, err := gateway.CreateLessonArgs(in, token)
	if err != nil {
		return model.Lesson{}, err
	}

	var row gateway.LessonWire
	if err := s.invoker.Invoke(ctx, gateway.OpCreateLesson, args, &row); err != nil {
		return model.Lesson{}, err
	}
	s.cache.Clear()

	return row.Normalize()
}

func (s *LessonService) UpdateLesson(ctx context.Context, lessonID string, in model.UpdateLessonInput) (model.Lesson, error) {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return model.Lesson{}, util.ErrNotAuthenticated
	}

	args, err := gateway.UpdateLessonArgs(lessonID, in, token)
	if err != nil {
		return model.Lesson{}, err
	}

	var row gateway.LessonWire
	if err := s.invoker.Invoke(ctx, gateway.OpUpdateLesson, args, &row); err != nil {
		return model.Lesson{}, err
	}
	s.cache.Clear()

	return row.Normalize()
}

func (s *LessonService) DeleteLesson(ctx context.Context, lessonID string) error {
	token, ok := s.tokens.AccessToken()
	if !ok {
		return util.ErrNotAuthenticated
	}

	err := s.invoker.Invoke(ctx, gateway.OpDeleteLesson, map[string]any{
		"lessonId":    lessonID,
		"accessToken": token,
	}, nil)
	if err != nil {
		return err
	}
	s.cache.Clear()
	return nil
}

func (s *LessonService) IsAuthenticated() bool {
	_, ok := s.tokens.AccessToken()
	return ok
}

// ClearCache evicts everything; meant for callers that changed content
// out of band.
func (s *LessonService) ClearCache() {
	s.cache.Clear()
}

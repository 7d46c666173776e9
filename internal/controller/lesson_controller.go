package controller

import (
	"encoding/json"

	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/service"
	"codeventure_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService     *service.LessonService
	ValidationService *service.ValidationService
}

func NewLessonController(lessonService *service.LessonService, validationService *service.ValidationService) *LessonController {
	return &LessonController{
		LessonService:     lessonService,
		ValidationService: validationService,
	}
}

func (c *LessonController) GetLesson(ctx *gin.Context) {
	lesson, found := c.LessonService.GetLessonByID(ctx.Request.Context(), ctx.Param("id"))
	if !found {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, lesson)
}

func (c *LessonController) SearchLessons(ctx *gin.Context) {
	lessons, err := c.LessonService.SearchLessons(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, lessons)
}

// createLessonRequest carries the content payload raw so it can be
// decoded against the declared lesson type.
type createLessonRequest struct {
	model.CreateLessonInput
	Content json.RawMessage `json:"content" binding:"required"`
}

func (c *LessonController) CreateLesson(ctx *gin.Context) {
	var req createLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := model.UnmarshalLessonContent(req.Type, req.Content)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	req.CreateLessonInput.Content = content

	lesson, err := c.LessonService.CreateLesson(ctx.Request.Context(), req.CreateLessonInput)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

type updateLessonRequest struct {
	model.UpdateLessonInput
	Content json.RawMessage `json:"content"`
}

func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	var req updateLessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if len(req.Content) > 0 {
		if req.Type == nil {
			util.BadRequest(ctx, "lessonType is required when content is updated")
			return
		}
		content, err := model.UnmarshalLessonContent(*req.Type, req.Content)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		req.UpdateLessonInput.Content = content
	}

	lesson, err := c.LessonService.UpdateLesson(ctx.Request.Context(), ctx.Param("id"), req.UpdateLessonInput)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	if err := c.LessonService.DeleteLesson(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type validateRequest struct {
	Code           string `json:"code" binding:"required"`
	ExpectedOutput string `json:"expectedOutput"`
}

// ValidateCode runs a submission against the lesson's expected output.
// The expected output may be supplied explicitly; otherwise it comes
// from the lesson's first test case.
func (c *LessonController) ValidateCode(ctx *gin.Context) {
	var req validateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lessonID := ctx.Param("id")
	lesson, found := c.LessonService.GetLessonByID(ctx.Request.Context(), lessonID)
	if !found {
		util.NotFound(ctx)
		return
	}

	expected := req.ExpectedOutput
	if expected == "" {
		exercise, ok := lesson.Content.(model.ExerciseContent)
		if !ok || len(exercise.TestCases) == 0 {
			util.BadRequest(ctx, "lesson has no expected output to validate against")
			return
		}
		expected = exercise.TestCases[0].ExpectedOutput
	}

	result, err := c.ValidationService.Validate(ctx.Request.Context(), lessonID, lesson.Language, req.Code, expected)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

package controller

import (
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/service"
	"codeventure_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	LessonService *service.LessonService
}

func NewCourseController(lessonService *service.LessonService) *CourseController {
	return &CourseController{LessonService: lessonService}
}

// GetCourses lists every course with its modules and lessons. Serves
// the cache unless ?refresh=true; degrades to the built-in catalog
// without a session or when the backend is unreachable.
func (c *CourseController) GetCourses(ctx *gin.Context) {
	forceRefresh := ctx.Query("refresh") == "true"
	courses := c.LessonService.GetCourses(ctx.Request.Context(), forceRefresh)
	util.Success(ctx, courses)
}

func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var in model.CreateCourseInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.LessonService.CreateCourse(ctx.Request.Context(), in)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var in model.UpdateCourseInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.LessonService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), in)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.LessonService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *CourseController) CreateModule(ctx *gin.Context) {
	var in model.CreateModuleInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mod, err := c.LessonService.CreateModule(ctx.Request.Context(), in)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Created(ctx, mod)
}

func (c *CourseController) UpdateModule(ctx *gin.Context) {
	var in model.UpdateModuleInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mod, err := c.LessonService.UpdateModule(ctx.Request.Context(), ctx.Param("id"), in)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, mod)
}

func (c *CourseController) DeleteModule(ctx *gin.Context) {
	if err := c.LessonService.DeleteModule(ctx.Request.Context(), ctx.Param("id")); err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ClearCache evicts the course cache, for admins who changed content
// out of band.
func (c *CourseController) ClearCache(ctx *gin.Context) {
	c.LessonService.ClearCache()
	util.Success(ctx, nil)
}

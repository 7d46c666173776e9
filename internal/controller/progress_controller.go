package controller

import (
	"codeventure_gateway/internal/model"
	"codeventure_gateway/internal/service"
	"codeventure_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

func (c *ProgressController) GetUserProgress(ctx *gin.Context) {
	progress, err := c.ProgressService.GetUserProgress(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

type updateProgressRequest struct {
	UserID           string               `json:"userId" binding:"required"`
	LessonID         string               `json:"lessonId" binding:"required"`
	Status           model.ProgressStatus `json:"status" binding:"required,oneof=not_started in_progress completed"`
	Score            *float64             `json:"score"`
	Attempts         int                  `json:"attempts"`
	TimeSpentSeconds int                  `json:"timeSpentSeconds"`
}

func (c *ProgressController) UpdateLessonProgress(ctx *gin.Context) {
	var req updateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.UpdateLessonProgress(
		ctx.Request.Context(),
		req.UserID,
		req.LessonID,
		req.Status,
		service.ProgressUpdate{
			Score:            req.Score,
			Attempts:         req.Attempts,
			TimeSpentSeconds: req.TimeSpentSeconds,
		},
	)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

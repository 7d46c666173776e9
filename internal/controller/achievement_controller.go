package controller

import (
	"codeventure_gateway/internal/service"
	"codeventure_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	AchievementService *service.AchievementService
}

func NewAchievementController(achievementService *service.AchievementService) *AchievementController {
	return &AchievementController{AchievementService: achievementService}
}

func (c *AchievementController) GetAvailable(ctx *gin.Context) {
	achievements, err := c.AchievementService.Available(ctx.Request.Context())
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

func (c *AchievementController) GetForUser(ctx *gin.Context) {
	achievements, err := c.AchievementService.ForUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

func (c *AchievementController) CheckAndUnlock(ctx *gin.Context) {
	unlocked, err := c.AchievementService.CheckAndUnlock(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, unlocked)
}

package controller

import (
	"codeventure_gateway/internal/service"
	"codeventure_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.ProfileService.GetUserProfile(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

func (c *ProfileController) GetStatistics(ctx *gin.Context) {
	stats, err := c.ProfileService.GetUserStatistics(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

func (c *ProfileController) UpdateAvatar(ctx *gin.Context) {
	var req struct {
		AvatarURL string `json:"avatarUrl" binding:"required,url"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProfileService.UpdateAvatar(ctx.Request.Context(), ctx.Param("id"), req.AvatarURL); err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ProfileController) UpdateUsername(ctx *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=32"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProfileService.UpdateUsername(ctx.Request.Context(), ctx.Param("id"), req.Username); err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

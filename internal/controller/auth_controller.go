package controller

import (
	"codeventure_gateway/internal/service"
	"codeventure_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tokens, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"userId": tokens.UserID})
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required,min=3,max=32"`
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	tokens, err := c.AuthService.Register(ctx.Request.Context(), req.Email, req.Password, req.Username)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"userId": tokens.UserID})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Session reports whether a credential is stored, without touching the
// remote.
func (c *AuthController) Session(ctx *gin.Context) {
	util.Success(ctx, gin.H{"authenticated": c.AuthService.IsAuthenticated()})
}

package middleware

import (
	"codeventure_gateway/internal/service"
	"codeventure_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

// SessionRequired rejects requests when no credential is stored. The
// token itself is attached by the service layer, never by the caller.
func SessionRequired(tokens service.TokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := tokens.AccessToken(); !ok {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired asks the remote whether the current session may author
// content. A gateway failure here reads as "not admin" rather than
// letting the request through.
func AdminRequired(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, err := auth.IsAdmin(c.Request.Context())
		if err != nil || !isAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

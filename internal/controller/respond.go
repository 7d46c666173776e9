package controller

import (
	"errors"

	"codeventure_gateway/internal/gateway"
	"codeventure_gateway/internal/util"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service-layer failures onto the response
// envelope: missing credential to 401, remote command failures to 502
// with the remote's message, anything else to 500.
func writeServiceError(c *gin.Context, err error) {
	var gwErr *gateway.Error
	switch {
	case errors.Is(err, util.ErrNotAuthenticated):
		util.Unauthorized(c)
	case errors.Is(err, util.ErrEmptyQuery), errors.Is(err, util.ErrUnknownLanguage):
		util.BadRequest(c, err.Error())
	case errors.As(err, &gwErr):
		util.BadGateway(c, gwErr.Message)
	default:
		util.LogInternalError(c, err)
	}
}

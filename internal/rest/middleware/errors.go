package middleware

import (
	"github.com/gin-gonic/gin"

	ierr "github.com/braintap/kpi-engine/internal/errors"
)

// ErrorHandlerMiddleware renders errors attached to the gin context as the
// structured error response, with the status derived from the error class.
// Handlers call c.Error(err) and return; rendering happens here.
func ErrorHandlerMiddleware(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	c.JSON(ierr.HTTPStatusFromErr(err), ierr.NewErrorResponse(err))
}

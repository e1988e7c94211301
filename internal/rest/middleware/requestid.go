package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/braintap/kpi-engine/internal/types"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware assigns every request a request id, honoring one
// supplied by the client, and echoes it back in the response header.
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = types.GenerateUUIDWithPrefix(types.UUIDPrefixRequest)
	}

	ctx := types.WithRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Writer.Header().Set(requestIDHeader, requestID)

	c.Next()
}

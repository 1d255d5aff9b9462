package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsati/directory-backend/internal/interfaces/http/dto"
)

// BodyLimit returns a middleware that limits request body size. The cap is
// generous because images arrive inline as base64 payloads.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeValidation, "request body exceeds maximum allowed size"))
			return
		}

		// Streaming requests without Content-Length still get cut off
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

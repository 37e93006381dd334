package middleware

import (
	"net/http"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/gin-gonic/gin"
)

// BodyLimit returns a middleware that caps the request body at maxBytes.
// Upload payloads are base64-inflated file content, so the cap is generous
// but finite; anything larger fails before reaching a handler.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewFailure("request body too large").WithRequestID(GetRequestID(c)))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

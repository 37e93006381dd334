package middleware

import (
	"net/http"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/logger"
	"github.com/gin-gonic/gin"
)

// ErrorHandler returns a middleware providing centralized logging for errors
// attached to the gin context, and a fallback 500 envelope for handlers that
// recorded an error without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID := GetRequestID(c)

			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Str("error", err.Error()).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError,
					dto.NewFailure("An unexpected error occurred").WithRequestID(requestID))
			}
		}
	}
}

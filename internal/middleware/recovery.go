package middleware

import (
	"net/http"

	"github.com/castlemill/tms-proxy/internal/domain/dto"
	"github.com/castlemill/tms-proxy/internal/logger"
	"github.com/gin-gonic/gin"
)

// Recovery returns a middleware that recovers from panics and responds with
// a generic 500 envelope. Panic detail is logged, never sent to the caller.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				log := logger.Logger()
				log.Error().
					Str("request_id", requestID).
					Interface("panic", err).
					Msg("PANIC recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewFailure("An unexpected error occurred").WithRequestID(requestID))
			}
		}()
		c.Next()
	}
}

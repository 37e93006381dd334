package http

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/castlemill/tms-proxy/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init("info", false)
	os.Exit(m.Run())
}

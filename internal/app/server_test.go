package app

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Parallel()

	server := NewServer(http.NewServeMux(), "9090")

	require.NotNil(t, server.httpServer)
	assert.Equal(t, ":9090", server.httpServer.Addr)
	assert.Equal(t, 15*time.Second, server.httpServer.ReadTimeout)
	assert.Equal(t, 10*time.Second, server.shutdownTimeout)
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	t.Parallel()

	server := NewServer(http.NewServeMux(), "9091")

	// Shutdown on a server that never started returns cleanly.
	assert.NoError(t, server.Shutdown())
}

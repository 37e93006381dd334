package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, int64(10<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "https://api.lokalise.com/api2", cfg.Upstream.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	assert.Empty(t, cfg.Upstream.FallbackToken)
	assert.False(t, cfg.Audit.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "25")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("MAX_BODY_BYTES", "1048576")
	t.Setenv("TMS_BASE_URL", "https://tms.example.com/api")
	t.Setenv("TMS_TIMEOUT", "5s")
	t.Setenv("TMS_API_TOKEN", "dev-token")
	t.Setenv("TMS_PROJECT_ID", "123.abc")
	t.Setenv("AUDIT_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, int64(1048576), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "https://tms.example.com/api", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, "dev-token", cfg.Upstream.FallbackToken)
	assert.Equal(t, "123.abc", cfg.Upstream.FallbackProjectID)
	assert.True(t, cfg.Audit.Enabled)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("AUDIT_ENABLED", "yep")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Audit.Enabled)
}

func TestParseCORSOrigins(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:  "empty returns local defaults",
			input: "",
			expected: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			},
		},
		{
			name:  "custom origins appended to defaults",
			input: "https://cms.example.com, https://plugin.example.com",
			expected: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"https://cms.example.com",
				"https://plugin.example.com",
			},
		},
		{
			name:  "blank entries are skipped",
			input: "https://cms.example.com,, ",
			expected: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
				"https://cms.example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseCORSOrigins(tt.input))
		})
	}
}

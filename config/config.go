// Package config provides configuration management for the translation proxy.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Audit    AuditConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	RateLimit    int
	RateWindow   time.Duration
	CORSOrigins  []string
	MaxBodyBytes int64
	SwaggerUser  string
	SwaggerPass  string
}

// UpstreamConfig holds the upstream translation-management API configuration.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
	// FallbackToken and FallbackProjectID are development conveniences only:
	// they are consulted last in the per-request resolution chain and must
	// never carry production credentials in a multi-tenant deployment.
	FallbackToken     string
	FallbackProjectID string
}

// AuditConfig holds the optional MongoDB audit trail configuration.
type AuditConfig struct {
	Enabled      bool
	URI          string
	DatabaseName string
	EntriesTTL   time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			RateLimit:    getEnvInt("RATE_LIMIT", 100),
			RateWindow:   getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:  parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			MaxBodyBytes: getEnvInt64("MAX_BODY_BYTES", 10<<20),
			SwaggerUser:  getEnv("SWAGGER_USER", ""),
			SwaggerPass:  getEnv("SWAGGER_PASS", ""),
		},
		Upstream: UpstreamConfig{
			BaseURL:           getEnv("TMS_BASE_URL", "https://api.lokalise.com/api2"),
			Timeout:           getEnvDuration("TMS_TIMEOUT", 30*time.Second),
			FallbackToken:     getEnv("TMS_API_TOKEN", ""),
			FallbackProjectID: getEnv("TMS_PROJECT_ID", ""),
		},
		Audit: AuditConfig{
			Enabled:      getEnvBool("AUDIT_ENABLED", false),
			URI:          getEnv("AUDIT_MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName: getEnv("AUDIT_MONGODB_DATABASE", "tms_proxy"),
			EntriesTTL:   getEnvDuration("AUDIT_ENTRIES_TTL", 30*24*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}

package config

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nebari-dev/nebari-software-pack-template/internal/logger"
)

const (
	defaultPort            = "8000"
	defaultLogLevel        = "info"
	defaultGinMode         = gin.ReleaseMode
	defaultShutdownTimeout = 10 * time.Second
)

type Config struct {
	AppPort string

	LogLevel string
	GinMode  string

	ShutdownTimeout time.Duration
}

func Load() Config {

	cfg := Config{

		AppPort: getEnv("PORT", defaultPort),

		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),
		GinMode:  getEnv("GIN_MODE", defaultGinMode),

		ShutdownTimeout: defaultShutdownTimeout,
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		logger.Warn("invalid GIN_MODE, using default", map[string]any{
			"value":   cfg.GinMode,
			"default": defaultGinMode,
		})
		cfg.GinMode = defaultGinMode
	}

	if raw := os.Getenv("SHUTDOWN_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			logger.Warn("invalid SHUTDOWN_TIMEOUT, using default", map[string]any{
				"value":   raw,
				"default": defaultShutdownTimeout.String(),
			})
		} else {
			cfg.ShutdownTimeout = d
		}
	}

	return cfg

}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.AppPort
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	HTTPAddr       string
	AllowedOrigins []string
	LogLevel       log.Level
	WSBufferSize   int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

func parseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace
	case "debug":
		return log.LevelDebug
	case "warn", "warning":
		return log.LevelWarn
	case "error":
		return log.LevelError
	}
	return log.LevelInfo
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Load reads the server configuration from the environment.
func Load() Config {
	return Config{
		HTTPAddr:       getenv("CHESS_ADDR", ":3000"),
		AllowedOrigins: splitOrigins(getenv("CHESS_ALLOWED_ORIGINS", "http://localhost:5173")),
		LogLevel:       parseLevel(getenv("CHESS_LOG_LEVEL", "info")),
		WSBufferSize:   getenvInt("CHESS_WS_BUFFER_SIZE", 1024),
	}
}

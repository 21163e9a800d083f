package config

import (
	"reflect"
	"testing"

	"github.com/gofiber/fiber/v2/log"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHESS_ADDR", "")
	t.Setenv("CHESS_ALLOWED_ORIGINS", "")
	t.Setenv("CHESS_LOG_LEVEL", "")
	t.Setenv("CHESS_WS_BUFFER_SIZE", "")

	cfg := Load()
	if cfg.HTTPAddr != ":3000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"http://localhost:5173"}) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.LogLevel != log.LevelInfo || cfg.WSBufferSize != 1024 {
		t.Fatalf("LogLevel = %v, WSBufferSize = %d", cfg.LogLevel, cfg.WSBufferSize)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHESS_ADDR", ":8080")
	t.Setenv("CHESS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("CHESS_LOG_LEVEL", "DEBUG")
	t.Setenv("CHESS_WS_BUFFER_SIZE", "not-a-number")

	cfg := Load()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://a.example", "https://b.example"}) {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
	if cfg.LogLevel != log.LevelDebug {
		t.Fatalf("LogLevel = %v", cfg.LogLevel)
	}
	if cfg.WSBufferSize != 1024 {
		t.Fatalf("bad buffer size should fall back, got %d", cfg.WSBufferSize)
	}
}

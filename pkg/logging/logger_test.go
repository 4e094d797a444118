package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"os"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger()
	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}
	if logger.Logger == nil {
		t.Fatal("Logger.Logger is nil")
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected slog.Level
	}{
		{"debug level", "DEBUG", slog.LevelDebug},
		{"info level", "INFO", slog.LevelInfo},
		{"warn level", "WARN", slog.LevelWarn},
		{"warning level", "WARNING", slog.LevelWarn},
		{"error level", "ERROR", slog.LevelError},
		{"lowercase debug", "debug", slog.LevelDebug},
		{"mixed case", "Info", slog.LevelInfo},
		{"invalid level", "INVALID", slog.LevelInfo},
		{"empty value", "", slog.LevelInfo},
	}

	originalLevel := os.Getenv(LevelEnv)
	defer os.Setenv(LevelEnv, originalLevel)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(LevelEnv, tt.envValue)
			level := getLogLevelFromEnv()
			if level != tt.expected {
				t.Errorf("getLogLevelFromEnv() = %v, want %v", level, tt.expected)
			}
		})
	}
}

func TestRunID(t *testing.T) {
	t.Run("generate run ID", func(t *testing.T) {
		id1 := GenerateRunID()
		id2 := GenerateRunID()

		if id1 == "" || id2 == "" {
			t.Error("GenerateRunID() returned empty string")
		}
		if id1 == id2 {
			t.Error("GenerateRunID() returned duplicate IDs")
		}
		if len(id1) != 16 {
			t.Errorf("GenerateRunID() returned wrong length: %d", len(id1))
		}
	})

	t.Run("context with run ID", func(t *testing.T) {
		ctx := WithRunID(context.Background(), "run-1")
		if got := GetRunID(ctx); got != "run-1" {
			t.Errorf("GetRunID() = %q, want %q", got, "run-1")
		}
	})

	t.Run("context without run ID", func(t *testing.T) {
		if id := GetRunID(context.Background()); id != "" {
			t.Errorf("GetRunID() = %q, want empty string", id)
		}
	})

	t.Run("auto-generate run ID", func(t *testing.T) {
		id := GetRunID(WithRunID(context.Background(), ""))
		if len(id) != 16 {
			t.Errorf("auto-generated run ID has wrong length: %d", len(id))
		}
	})
}

func TestSanitizeAttributes(t *testing.T) {
	tests := []struct {
		name     string
		attr     slog.Attr
		expected string
	}{
		{"rounded float", slog.Float64("power", 0.123456), "0.123"},
		{"whole float", slog.Float64("x", 10), "10"},
		{"NaN", slog.Float64("angle", math.NaN()), "NaN"},
		{"positive infinity", slog.Float64("speed", math.Inf(1)), "+Inf"},
		{"negative infinity", slog.Float64("speed", math.Inf(-1)), "-Inf"},
		{"string untouched", slog.String("renderer", "terminal"), "terminal"},
		{"int untouched", slog.Int("points", 101), "101"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := sanitizeAttributes(nil, tt.attr)
			if result.Key != tt.attr.Key {
				t.Errorf("key = %q, want %q", result.Key, tt.attr.Key)
			}
			if result.Value.String() != tt.expected {
				t.Errorf("sanitizeAttributes() = %q, want %q", result.Value.String(), tt.expected)
			}
		})
	}
}

func TestNewLoggerTo_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf)

	logger.Info(context.Background(), "terrain built", "points", 101, "power", math.NaN())

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse log JSON: %v", err)
	}
	if logEntry["points"] != float64(101) {
		t.Errorf("Expected points 101, got %v", logEntry["points"])
	}
	if logEntry["power"] != "NaN" {
		t.Errorf("Expected power 'NaN', got %v", logEntry["power"])
	}
}

func TestLoggerMethods(t *testing.T) {
	var buf bytes.Buffer

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	logger := &Logger{slog.New(handler)}

	ctx := WithRunID(context.Background(), "test-id-123")

	t.Run("info logging", func(t *testing.T) {
		buf.Reset()
		logger.Info(ctx, "test info message", "seed", "value")

		var logEntry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
			t.Fatalf("Failed to parse log JSON: %v", err)
		}

		if logEntry["msg"] != "test info message" {
			t.Errorf("Expected message 'test info message', got %v", logEntry["msg"])
		}
		if logEntry["level"] != "INFO" {
			t.Errorf("Expected level 'INFO', got %v", logEntry["level"])
		}
		if logEntry["run_id"] != "test-id-123" {
			t.Errorf("Expected run_id 'test-id-123', got %v", logEntry["run_id"])
		}
		if logEntry["seed"] != "value" {
			t.Errorf("Expected seed 'value', got %v", logEntry["seed"])
		}
	})

	t.Run("error logging", func(t *testing.T) {
		buf.Reset()
		testErr := errors.New("test error")
		logger.Error(ctx, "test error message", testErr, "context", "test")

		var logEntry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
			t.Fatalf("Failed to parse log JSON: %v", err)
		}

		if logEntry["level"] != "ERROR" {
			t.Errorf("Expected level 'ERROR', got %v", logEntry["level"])
		}
		if logEntry["error"] != "test error" {
			t.Errorf("Expected error 'test error', got %v", logEntry["error"])
		}
	})

	t.Run("debug logging", func(t *testing.T) {
		buf.Reset()
		logger.Debug(ctx, "debug message")

		var logEntry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
			t.Fatalf("Failed to parse log JSON: %v", err)
		}
		if logEntry["level"] != "DEBUG" {
			t.Errorf("Expected level 'DEBUG', got %v", logEntry["level"])
		}
	})

	t.Run("warn logging", func(t *testing.T) {
		buf.Reset()
		logger.Warn(ctx, "warning message")

		var logEntry map[string]interface{}
		if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
			t.Fatalf("Failed to parse log JSON: %v", err)
		}
		if logEntry["level"] != "WARN" {
			t.Errorf("Expected level 'WARN', got %v", logEntry["level"])
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Run("wrap nil error", func(t *testing.T) {
		if result := WrapError(nil, "context"); result != nil {
			t.Errorf("WrapError(nil) should return nil, got %v", result)
		}
	})

	t.Run("wrap error with context", func(t *testing.T) {
		originalErr := errors.New("original error")
		wrapped := WrapError(originalErr, "additional context")

		expectedMsg := "additional context: original error"
		if wrapped.Error() != expectedMsg {
			t.Errorf("WrapError() = %q, want %q", wrapped.Error(), expectedMsg)
		}
		if !errors.Is(wrapped, originalErr) {
			t.Error("WrapError() should preserve original error")
		}
	})

	t.Run("wrap error with formatted context", func(t *testing.T) {
		wrapped := WrapError(errors.New("original error"), "context with %s and %d", "string", 42)

		expectedMsg := "context with string and 42: original error"
		if wrapped.Error() != expectedMsg {
			t.Errorf("WrapError() = %q, want %q", wrapped.Error(), expectedMsg)
		}
	})
}

func TestLogWithoutRunID(t *testing.T) {
	var buf bytes.Buffer

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := &Logger{slog.New(handler)}

	logger.Info(context.Background(), "test message")

	if strings.Contains(buf.String(), "run_id") {
		t.Error("Log should not contain run_id when none is set in context")
	}
}

// Package logging provides structured logging for the lander game.
// It wraps Go's standard slog package so that every component logs with the
// same JSON shape, carries the run ID of the current session and reports
// physics values in a readable form.
package logging

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"
)

// LevelEnv names the environment variable that selects the log level.
const LevelEnv = "LANDER_LOG_LEVEL"

// Logger wraps slog.Logger with context-first helpers and run ID support.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger that writes JSON to stdout.
// The level is read from LANDER_LOG_LEVEL (DEBUG, INFO, WARN, ERROR) and
// defaults to INFO.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a Logger writing JSON to w. The terminal frontend
// uses it to keep log lines off the screen it draws on.
func NewLoggerTo(w io.Writer) *Logger {
	level := getLogLevelFromEnv()
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: sanitizeAttributes,
	})
	return &Logger{slog.New(handler)}
}

// LogWithContext logs a message, adding the run ID found in ctx if any.
func (l *Logger) LogWithContext(ctx context.Context, level slog.Level, msg string, args ...any) {
	if runID := GetRunID(ctx); runID != "" {
		args = append(args, "run_id", runID)
	}
	l.Log(ctx, level, msg, args...)
}

// Info logs an informational message with context.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelInfo, msg, args...)
}

// Warn logs a warning message with context.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelWarn, msg, args...)
}

// Error logs an error message with context and proper error formatting.
func (l *Logger) Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.LogWithContext(ctx, slog.LevelError, msg, args...)
}

// Debug logs a debug message with context.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.LogWithContext(ctx, slog.LevelDebug, msg, args...)
}

type runIDKey struct{}

// WithRunID adds a run ID to the context.
// If no run ID is provided, a new one will be generated.
func WithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		runID = GenerateRunID()
	}
	return context.WithValue(ctx, runIDKey{}, runID)
}

// GetRunID extracts the run ID from the context.
// Returns empty string if no run ID is present.
func GetRunID(ctx context.Context) string {
	if id, ok := ctx.Value(runIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateRunID creates a new random run ID.
func GenerateRunID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func getLogLevelFromEnv() slog.Level {
	levelStr := strings.ToUpper(os.Getenv(LevelEnv))
	switch levelStr {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// floatPrecision is the number of decimal places kept for float attributes.
const floatPrecision = 1e3

// sanitizeAttributes rounds float attributes and turns non-finite values
// into strings, which the JSON encoder cannot represent.
func sanitizeAttributes(groups []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindFloat64 {
		return a
	}

	f := a.Value.Float64()
	switch {
	case math.IsNaN(f):
		return slog.String(a.Key, "NaN")
	case math.IsInf(f, 1):
		return slog.String(a.Key, "+Inf")
	case math.IsInf(f, -1):
		return slog.String(a.Key, "-Inf")
	}
	return slog.Float64(a.Key, math.Round(f*floatPrecision)/floatPrecision)
}

// WrapError wraps an error with additional context information.
// This preserves the original error while adding descriptive context.
func WrapError(err error, context string, args ...any) error {
	if err == nil {
		return nil
	}
	if len(args) > 0 {
		context = fmt.Sprintf(context, args...)
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Package logger wraps zerolog.Logger with the constructors and
// context-aware helpers used throughout the securevault client.
//
// The Logger type embeds zerolog.Logger, so the full zerolog API (Debug,
// Info, Warn, Err, ...) is available directly. Operation-scoped loggers are
// obtained via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// envLogLevel overrides the default log level when set to a zerolog level
// name ("debug", "info", "warn", ...).
const envLogLevel = "SECUREVAULT_LOG_LEVEL"

// Logger is a thin wrapper around zerolog.Logger that carries the role of
// the emitting component.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger writing JSON entries to out. Every entry carries
// a "role" field for the given component, a timestamp, and a "func" caller
// field holding the fully qualified function name.
func New(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(resolveLevel())
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewClientLogger constructs a *Logger for interactive client runs. The
// terminal UI owns stdout, so entries go to "securevault.log" next to the
// executable; stdout is the fallback when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var out io.Writer = os.Stdout

	if execPath, err := os.Executable(); err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), "securevault.log")
		if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			out = f
		}
	}

	return New(out, role)
}

// Nop returns a *Logger that discards everything. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// FromContext returns the logger attached to ctx by zerolog's Ctx helper.
// When ctx carries no logger, zerolog's global logger is returned, so the
// result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func resolveLevel() zerolog.Level {
	if raw := os.Getenv(envLogLevel); raw != "" {
		if level, err := zerolog.ParseLevel(raw); err == nil {
			return level
		}
	}
	return zerolog.InfoLevel
}

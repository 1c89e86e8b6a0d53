package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled
// from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// defaultLevel is the process-wide verbosity shared by every controller.
// It is the only mutable state independent runs have in common.
var defaultLevel atomic.Int32

// SetDefaultLevel updates the process-wide verbosity.
func SetDefaultLevel(l LogLevel) { defaultLevel.Store(int32(l)) }

// DefaultLevel returns the process-wide verbosity.
func DefaultLevel() LogLevel { return LogLevel(defaultLevel.Load()) }

// Logger defines the minimal logging interface for agentick. This allows
// users to provide their own logger implementation or use the built-in
// adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// Debug logs a debug message.
func (s *SlogAdapter) Debug(msg string, args ...any) { s.Logger.Debug(msg, args...) }

// Info logs an informational message.
func (s *SlogAdapter) Info(msg string, args ...any) { s.Logger.Info(msg, args...) }

// Warn logs a warning message.
func (s *SlogAdapter) Warn(msg string, args ...any) { s.Logger.Warn(msg, args...) }

// Error logs an error message.
func (s *SlogAdapter) Error(msg string, args ...any) { s.Logger.Error(msg, args...) }

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// Config configures construction of a RunLogger.
type Config struct {
	Level  LogLevel
	Format string // json or text
	Output io.Writer
	RunID  string
}

// DefaultConfig returns a baseline JSON configuration at the process-wide
// verbosity.
func DefaultConfig() *Config {
	return &Config{Level: DefaultLevel(), Format: "json", Output: os.Stdout}
}

// RunLogger wraps a Logger with run identity and domain helpers. Copies
// produced by WithRun are cheap and independent.
type RunLogger struct {
	logger Logger
	level  LogLevel
	runID  string
}

// NewRunLogger builds a RunLogger from a config (or defaults if nil).
func NewRunLogger(cfg *Config) *RunLogger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return &RunLogger{logger: NewSlogAdapter(slog.New(handler)), level: cfg.Level, runID: cfg.RunID}
}

// WrapRunLogger adapts an existing Logger into a RunLogger.
func WrapRunLogger(logger Logger) *RunLogger {
	if logger == nil {
		logger = NoOpLogger{}
	}
	return &RunLogger{logger: logger, level: DefaultLevel()}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRun returns a copy scoped to the given run identifier.
func (l *RunLogger) WithRun(runID string) *RunLogger {
	nl := *l
	nl.runID = runID
	return &nl
}

func (l *RunLogger) args(args []any) []any {
	if l.runID == "" {
		return args
	}
	return append([]any{"run_id", l.runID}, args...)
}

// Debug logs at debug level.
func (l *RunLogger) Debug(msg string, args ...any) {
	if l.level <= LogLevelDebug {
		l.logger.Debug(msg, l.args(args)...)
	}
}

// Info logs at info level.
func (l *RunLogger) Info(msg string, args ...any) {
	if l.level <= LogLevelInfo {
		l.logger.Info(msg, l.args(args)...)
	}
}

// Warn logs at warn level.
func (l *RunLogger) Warn(msg string, args ...any) {
	if l.level <= LogLevelWarn {
		l.logger.Warn(msg, l.args(args)...)
	}
}

// Error logs at error level.
func (l *RunLogger) Error(msg string, args ...any) {
	if l.level <= LogLevelError {
		l.logger.Error(msg, l.args(args)...)
	}
}

// LogModelExchange records one round-trip to the model client.
func (l *RunLogger) LogModelExchange(provider string, messages int, dur time.Duration, err error) {
	if err != nil {
		l.Error("model.exchange.failed", "provider", provider, "messages", messages,
			"duration_ms", dur.Milliseconds(), "error", err.Error())
		return
	}
	l.Info("model.exchange.completed", "provider", provider, "messages", messages,
		"duration_ms", dur.Milliseconds())
}

// LogCapabilityCall records execution details for a dispatched capability.
func (l *RunLogger) LogCapabilityCall(name string, dur time.Duration, err error) {
	if err != nil {
		l.Error("capability.call.failed", "capability", name,
			"duration_ms", dur.Milliseconds(), "error", err.Error())
		return
	}
	l.Info("capability.call.completed", "capability", name, "duration_ms", dur.Milliseconds())
}

// NoOpLogger discards all log messages. Useful for testing or when logging is
// disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// Package logging provides a structured logging wrapper around Go's log/slog
// with optional rotated file output and execution timing helpers.
package logging

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger with convenience methods for brookplot
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

// LogFormat represents the output format for logs
type LogFormat string

const (
	// FormatText outputs human-readable text logs
	FormatText LogFormat = "text"
	// FormatJSON outputs structured JSON logs
	FormatJSON LogFormat = "json"
)

// Config holds configuration for logger initialization
type Config struct {
	// FilePath is the path to the log file (empty = no file logging)
	FilePath string
	// Stderr also sends records to standard error (CLI --verbose)
	Stderr bool
	// Level is the minimum log level (debug, info, warn, error)
	Level slog.Level
	// Format is the output format (text or json)
	Format LogFormat
	// MaxSizeMB is the maximum size in MB before rotation
	MaxSizeMB int
	// MaxBackups is the maximum number of old log files to keep
	MaxBackups int
}

var (
	// globalLogger is the package-level logger instance
	globalLogger *Logger
	// noopLogger is used when logging is disabled
	noopLogger = &Logger{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
)

// Init initializes the global logger with the given configuration.
// With neither a file nor stderr configured, logging is disabled.
func Init(config Config) error {
	if config.FilePath == "" && !config.Stderr {
		globalLogger = noopLogger
		return nil
	}

	var (
		writers []io.Writer
		closer  io.Closer
	)
	if config.FilePath != "" {
		rotating := &lumberjack.Logger{
			Filename:   config.FilePath,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			Compress:   true,
		}
		writers = append(writers, rotating)
		closer = rotating
	}
	if config.Stderr {
		writers = append(writers, os.Stderr)
	}

	globalLogger = New(io.MultiWriter(writers...), config.Level, config.Format)
	globalLogger.closer = closer
	return nil
}

// New builds a standalone logger writing to w
func New(w io.Writer, level slog.Level, format LogFormat) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{logger: slog.New(handler)}
}

// Get returns the global logger instance.
// Returns a noop logger if Init was not called or logging is disabled.
func Get() *Logger {
	if globalLogger == nil {
		return noopLogger
	}
	return globalLogger
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a new Logger with the given key-value pairs added as context
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		logger: l.logger.With(args...),
	}
}

// Component returns a child logger tagged with a component name
func (l *Logger) Component(name string) *Logger {
	return l.With("component", name)
}

// IsEnabled returns true if logging is enabled (not noop)
func (l *Logger) IsEnabled() bool {
	return l != noopLogger
}

// Package-level convenience functions

// Debug logs a debug message using the global logger
func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

// Info logs an info message using the global logger
func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

// Warn logs a warning message using the global logger
func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

// Error logs an error message using the global logger
func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

// IsEnabled returns true if logging is enabled globally
func IsEnabled() bool {
	return Get().IsEnabled()
}

// ParseLevel converts a string to slog.Level
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat converts a string to LogFormat
func ParseFormat(format string) LogFormat {
	switch format {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// Shutdown closes the log file, if any, and resets to the noop logger
func Shutdown() error {
	l := globalLogger
	globalLogger = noopLogger
	if l != nil && l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

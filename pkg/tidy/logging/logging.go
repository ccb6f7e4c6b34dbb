// Package logging provides the scoped run logger for tidy. Each organize
// run opens its own logger writing to a log file inside the target
// directory, so there is no process-global logging state; the orchestrator
// creates the logger after validation succeeds and threads it through the
// scan.
//
// Basic usage:
//
//	logger, err := logging.Open(targetDir)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("starting cleanup", "mode", "preview")
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// FileName is the log artifact created inside the target directory.
// The scanner excludes this name from classification.
const FileName = "file_organizer.log"

// timeLayout is the timestamp format of log file lines.
const timeLayout = "2006-01-02 15:04:05"

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the level label used in log file lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// toCharmLevel converts a Level to a charmbracelet/log level.
func (l Level) toCharmLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ParseLevel parses a level string (debug, info, warn, error).
// Unknown strings fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes run events to the log artifact in the target directory,
// one line per event: "<timestamp> - <LEVEL> - <message>". An optional
// console logger mirrors events to stderr with charmbracelet/log styling.
type Logger struct {
	mu      sync.Mutex
	file    io.WriteCloser
	path    string
	console *log.Logger
	now     func() time.Time
}

// Option customizes a Logger.
type Option func(*Logger)

// WithConsole mirrors events at or above the given level to stderr.
func WithConsole(level Level) Option {
	return WithConsoleWriter(os.Stderr, level)
}

// WithConsoleWriter mirrors events to an arbitrary writer. Used by tests.
func WithConsoleWriter(w io.Writer, level Level) Option {
	return func(l *Logger) {
		l.console = log.NewWithOptions(w, log.Options{
			Level:           level.toCharmLevel(),
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "tidy",
		})
	}
}

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// Open creates a Logger appending to the log artifact inside dir.
// The directory must already exist; Open never creates it.
func Open(dir string, opts ...Option) (*Logger, error) {
	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l := &Logger{
		file: f,
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Path returns the log file path.
func (l *Logger) Path() string {
	return l.path
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

// log writes one line to the file and mirrors it to the console logger.
func (l *Logger) log(level Level, msg string, args ...interface{}) {
	l.mu.Lock()
	if l.file != nil {
		line := fmt.Sprintf("%s - %s - %s\n", l.now().Format(timeLayout), level, formatMessage(msg, args...))
		_, _ = io.WriteString(l.file, line)
	}
	l.mu.Unlock()

	if l.console != nil {
		logTo(l.console, level, msg, args...)
	}
}

// logTo dispatches a message to the charm logger at the given level.
func logTo(logger *log.Logger, level Level, msg string, args ...interface{}) {
	switch level {
	case LevelDebug:
		logger.Debug(msg, args...)
	case LevelInfo:
		logger.Info(msg, args...)
	case LevelWarn:
		logger.Warn(msg, args...)
	case LevelError:
		logger.Error(msg, args...)
	}
}

// formatMessage appends key=value pairs to the message for the file line.
func formatMessage(msg string, args ...interface{}) string {
	if len(args) == 0 {
		return msg
	}

	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&sb, " %v=%v", args[i], args[i+1])
	}
	// A trailing key without a value is logged as-is.
	if len(args)%2 != 0 {
		fmt.Fprintf(&sb, " %v", args[len(args)-1])
	}
	return sb.String()
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	if err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}

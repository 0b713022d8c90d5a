package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/lasif-tools/cli/internal/domain"
)

// Level represents the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level.
// Valid values: "debug", "info", "warn", "error" (case insensitive).
// Returns LevelWarn if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelWarn
	}
}

// Logger writes timestamped log lines to a file. Safe for concurrent use.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	minLevel Level
	enabled  bool
}

var (
	defaultLogger   *Logger
	defaultLoggerMu sync.RWMutex
	once            sync.Once
)

// Init initializes the global logger with the given file.
// Download commands point this at the project's LOGS directory.
func Init(logPath string, minLevel Level) error {
	var err error
	once.Do(func() {
		var l *Logger
		l, err = New(logPath, minLevel)
		if err != nil {
			return
		}
		defaultLoggerMu.Lock()
		defaultLogger = l
		defaultLoggerMu.Unlock()
	})
	return err
}

// New creates a logger that appends to the given file, creating parent
// directories as needed.
func New(logPath string, minLevel Level) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return &Logger{
		file:     file,
		minLevel: minLevel,
		enabled:  true,
	}, nil
}

// Close closes the logger.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// SetEnabled enables or disables logging.
func (l *Logger) SetEnabled(enabled bool) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = enabled
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || !l.enabled || level < l.minLevel {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, args...)
	logLine := fmt.Sprintf("[%s] %s: %s\n", timestamp, level.String(), message)

	if _, err := l.file.Write([]byte(logLine)); err != nil {
		if level >= LevelError {
			fmt.Fprintf(os.Stderr, "logger: write failed: %v (message: %s)\n", err, message)
		}
	}
}

// Debug writes a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LevelDebug, format, args...)
}

// Info writes an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

// Warn writes a warning.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

// Error writes an error.
func (l *Logger) Error(format string, args ...any) {
	l.log(LevelError, format, args...)
}

// Writer returns an io.Writer that logs each write at the given level.
func (l *Logger) Writer(level Level) io.Writer {
	return &logWriter{logger: l, level: level}
}

type logWriter struct {
	logger *Logger
	level  Level
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.log(w.level, "%s", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Convenience functions for the global logger.

// Debug writes a debug message to the global logger.
func Debug(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Debug(format, args...)
	}
}

// Info writes an informational message to the global logger.
func Info(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Info(format, args...)
	}
}

// Warn writes a warning to the global logger.
func Warn(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Warn(format, args...)
	}
}

// Error writes an error to the global logger.
func Error(format string, args ...any) {
	if l := GetLogger(); l != nil {
		l.Error(format, args...)
	}
}

// Close closes the global logger.
func Close() error {
	if l := GetLogger(); l != nil {
		return l.Close()
	}
	return nil
}

// GetLogger returns the global logger (nil until Init is called).
func GetLogger() *Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}

// NopLogger discards all messages. Useful for tests.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (NopLogger) Close() error             { return nil }

var _ domain.Logger = (*Logger)(nil)
var _ domain.Logger = NopLogger{}

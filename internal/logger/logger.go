package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Environment variables read when a logger is created.
const (
	EnvLevel = "REMITKIOSK_LOG_LEVEL"
	EnvFile  = "REMITKIOSK_LOG_FILE"
)

// Level represents a log level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a log level
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

// ParseLevel parses a log level string
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Logger is a leveled logger. The kiosk owns the terminal, so output is
// discarded unless a log file is configured.
type Logger struct {
	mu     sync.Mutex
	level  Level
	prefix string
	logger *log.Logger
	file   *os.File
}

// Default is the process-wide logger.
var Default *Logger

func init() {
	Default = New()
}

// New creates a logger configured from the environment.
func New() *Logger {
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(io.Discard, "", log.LstdFlags),
	}

	if levelStr := os.Getenv(EnvLevel); levelStr != "" {
		if level, err := ParseLevel(levelStr); err == nil {
			l.level = level
		}
	}

	if path := os.Getenv(EnvFile); path != "" {
		_ = l.SetFile(path)
	}

	return l
}

// Configure applies a level and optional log file, typically from the
// loaded configuration. Empty values leave the current setting untouched.
func (l *Logger) Configure(level, file string) error {
	if level != "" {
		lv, err := ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(lv)
	}
	if file != "" {
		return l.SetFile(file)
	}
	return nil
}

// SetFile redirects output to an append-only file, closing any previous one.
func (l *Logger) SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.logger.SetOutput(f)
	return nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger.SetOutput(io.Discard)
	return err
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput sets the output writer
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

// SetPrefix tags every line with the kiosk id.
func (l *Logger) SetPrefix(prefix string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prefix = prefix
}

func (l *Logger) Debug(format string, v ...interface{}) { l.log(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...interface{})  { l.log(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...interface{})  { l.log(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...interface{}) { l.log(LevelError, format, v...) }

func (l *Logger) log(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	if l.prefix != "" {
		l.logger.Printf("[%s] [%s] %s", level, l.prefix, msg)
		return
	}
	l.logger.Printf("[%s] %s", level, msg)
}

// Package-level helpers write to Default.

func Debug(format string, v ...interface{}) { Default.Debug(format, v...) }
func Info(format string, v ...interface{})  { Default.Info(format, v...) }
func Warn(format string, v ...interface{})  { Default.Warn(format, v...) }
func Error(format string, v ...interface{}) { Default.Error(format, v...) }

// Close closes the default logger
func Close() error {
	return Default.Close()
}

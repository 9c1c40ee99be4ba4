// Package logger wraps zerolog with the small key/value API used across the
// command.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// EnvLevel overrides the log level when the flag is not given.
const EnvLevel = "NIRI_APP_HOTKEY_LOG"

// Logger is a levelled structured logger.
type Logger struct {
	zlog    zerolog.Logger
	level   zerolog.Level
	file    *os.File
	writers []io.Writer
}

// Option configures a Logger.
type Option func(*Logger) error

// WithLevel sets the minimum level.
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) error {
		l.level = level
		return nil
	}
}

// WithConsole adds a human-readable writer, normally stderr.
func WithConsole(w io.Writer) Option {
	return func(l *Logger) error {
		l.writers = append(l.writers, zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		})
		return nil
	}
}

// WithWriter adds a raw JSON writer.
func WithWriter(w io.Writer) Option {
	return func(l *Logger) error {
		l.writers = append(l.writers, w)
		return nil
	}
}

// WithFile appends to the log file at path, creating parent directories.
func WithFile(path string) Option {
	return func(l *Logger) error {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		l.file = f
		l.writers = append(l.writers, zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		return nil
	}
}

// New creates a logger. Without a writer option it logs to stderr.
func New(opts ...Option) (*Logger, error) {
	l := &Logger{level: zerolog.WarnLevel}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			l.Close()
			return nil, fmt.Errorf("apply logger option: %w", err)
		}
	}
	var out io.Writer
	switch len(l.writers) {
	case 0:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	case 1:
		out = l.writers[0]
	default:
		out = zerolog.MultiLevelWriter(l.writers...)
	}
	l.zlog = zerolog.New(out).Level(l.level).With().Timestamp().Logger()
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop(), level: zerolog.Disabled}
}

// ParseLevel converts a level name, defaulting to warn.
func ParseLevel(s string) zerolog.Level {
	if s == "" {
		return zerolog.WarnLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return level
}

// Level returns the configured minimum level.
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	logFields(l.zlog.Debug(), fields...).Msg(msg)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	logFields(l.zlog.Info(), fields...).Msg(msg)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	logFields(l.zlog.Warn(), fields...).Msg(msg)
}

// Error logs msg with err attached.
func (l *Logger) Error(msg string, err error, fields ...interface{}) {
	event := l.zlog.Error()
	if err != nil {
		event = event.Err(err)
	}
	logFields(event, fields...).Msg(msg)
}

// logFields adds alternating key/value pairs to the event. Non-string keys
// and a trailing key without a value are dropped.
func logFields(event *zerolog.Event, fields ...interface{}) *zerolog.Event {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, fields[i+1])
	}
	return event
}

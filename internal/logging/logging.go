// Package logging sets up the showroom's file logger. The terminal belongs to
// the TUI, so diagnostics go to a rotated file instead of stdout.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure New.
type Options struct {
	// Path of the log file. Empty disables file logging.
	Path string
	// Debug enables debug records. SHOWROOM_DEBUG also enables them.
	Debug bool
}

// Logger wraps a slog.Logger and the rotating writer behind it.
type Logger struct {
	*slog.Logger
	writer io.WriteCloser
}

// New opens the log file at opts.Path. With an empty path the returned logger
// discards everything.
func New(opts Options) (*Logger, error) {
	if opts.Path == "" {
		return &Logger{Logger: Discard()}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	writer := newRotator(opts.Path)
	level := slog.LevelInfo
	if opts.Debug || os.Getenv("SHOWROOM_DEBUG") != "" {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
			}
			return a
		},
	})

	return &Logger{Logger: slog.New(handler), writer: writer}, nil
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// Enabled reports whether l would emit records at level.
func Enabled(l *slog.Logger, level slog.Level) bool {
	return l != nil && l.Enabled(context.Background(), level)
}

func newRotator(path string) *lumberjack.Logger {
	rot := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
		Compress:   false,
	}
	if v, err := strconv.Atoi(os.Getenv("SHOWROOM_LOG_MAX_SIZE")); err == nil && v > 0 {
		rot.MaxSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("SHOWROOM_LOG_MAX_BACKUPS")); err == nil && v >= 0 {
		rot.MaxBackups = v
	}
	return rot
}

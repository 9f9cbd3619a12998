// Package log configures the application's structured logger.
//
// A terminal UI owns the screen, so nothing is written to stderr. When debug
// logging is enabled records go to daily JSON files; otherwise they are
// discarded.
package log

import (
	"log/slog"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	appName          = "ripple"
	defaultRetention = 7
)

// Options configures the logger.
type Options struct {
	// Debug enables file logging at debug level.
	Debug bool
	// Dir is the directory for log files. Empty means the XDG state dir.
	Dir string
	// RetentionDays is how many days of log files to keep (0 = default).
	RetentionDays int
}

// Logger is the application logger and the file it writes to.
type Logger struct {
	*slog.Logger
	writer *FileWriter
}

// New builds a logger from opts. The returned logger is never nil; callers
// must Close it to release the log file.
func New(opts Options) (*Logger, error) {
	if !opts.Debug {
		return &Logger{Logger: slog.New(slog.DiscardHandler)}, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = DefaultDir()
	}
	retention := opts.RetentionDays
	if retention <= 0 {
		retention = defaultRetention
	}
	Cleanup(dir, retention)

	fw, err := NewFileWriter(dir)
	if err != nil {
		return nil, err
	}

	handler := slog.NewJSONHandler(fw, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{Logger: slog.New(handler), writer: fw}, nil
}

// DefaultDir returns the log directory under the XDG state home.
func DefaultDir() string {
	return filepath.Join(xdg.StateHome, appName, "logs")
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.writer == nil {
		return nil
	}
	return l.writer.Close()
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) *slog.Logger {
	return l.With("component", name)
}

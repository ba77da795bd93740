// Package logging configures the process-wide slog logger.
// The TUI owns the terminal, so everything goes to a rotated file.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Options tunes where and how verbosely the logger writes
type Options struct {
	// Path overrides the log file location
	Path string
	// Debug lowers the level to Debug (default Info)
	Debug bool
}

// DefaultPath returns $XDG_STATE_HOME/termllo/termllo.log, falling back to
// ~/.termllo/logs/termllo.log
func DefaultPath() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "termllo", "termllo.log"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".termllo", "logs", "termllo.log"), nil
}

// Init initializes the logging system with a size-rotated text log.
// The returned closer flushes and closes the log file.
func Init(opts Options) (io.Closer, error) {
	logPath := opts.Path
	if logPath == "" {
		var err error
		logPath, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, err
	}

	writer := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	Logger = New(writer, opts.Debug)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(writer)
	log.SetFlags(log.LstdFlags)

	return writer, nil
}

// New builds a text logger on w. Used directly by tests.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

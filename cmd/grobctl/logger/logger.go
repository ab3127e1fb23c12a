package logger

import (
	"io"
	"log/slog"
	"os"
)

// L is the global logger instance. It's initialized to discard all output by default.
// Call Init() to enable logging.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// file is the log file opened by the last Init, closed by the next one.
var file *os.File

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	File    string     // Append JSON records to this file instead of writing text to Output
	Output  io.Writer  // Destination for text records. Default: os.Stderr
	Level   slog.Level // Minimum log level. Default: LevelInfo when enabled
}

// Init configures logging. Call before any log calls.
// If opts.Enabled is false, all log output is discarded.
func Init(opts Options) error {
	if file != nil {
		file.Close()
		file = nil
	}

	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	level := opts.Level
	if level == 0 {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		file = f
		L = slog.New(slog.NewJSONHandler(f, handlerOpts))
		return nil
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	L = slog.New(slog.NewTextHandler(out, handlerOpts))
	return nil
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }

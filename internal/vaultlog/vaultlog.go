// Package vaultlog is the structured logging surface shared by
// cmd/swordctl and anything else that wants to report what the codec is
// doing without tying callers to a concrete sink. Discards everything by
// default; callers that want output call Init.
package vaultlog

import (
	"io"
	"log/slog"
	"os"
)

// L is the package logger. Unconfigured, it discards all output, same
// as the teacher's TUI logger.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures Init.
type Options struct {
	Enabled bool
	Level   slog.Level
}

// Init points L at stderr with the given level, or back at io.Discard
// if opts.Enabled is false.
func Init(opts Options) {
	if !opts.Enabled {
		L = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	L = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.Level}))
}

// Debug logs a debug-level message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info-level message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warn-level message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error-level message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }

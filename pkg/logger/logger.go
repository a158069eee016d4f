// Package logger provides the structured, levelled logger for the canteen
// client, built on log/slog.
//
// In local/dev environments it writes human-readable text to stderr so log
// lines never mix with the tables the views print on stdout. In production
// (kiosk) mode it writes JSON, optionally fanned out to a MongoDB sink when
// MONGO_LOG_URI is configured.
package logger

import (
	"log/slog"
	"os"

	"github.com/smartbytes/canteen/config"
)

var L *slog.Logger

func init() {
	var level slog.Level
	var handler slog.Handler

	opts := &slog.HandlerOptions{Level: level}

	switch config.AppEnv() {
	case "production", "prod", "kiosk":
		level = slog.LevelInfo
		opts.Level = level
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		level = slog.LevelDebug
		opts.Level = level
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	if uri := config.MongoLogURI(); uri != "" {
		if mh, err := NewMongoHandler(uri, "canteen", "client_logs", handler); err == nil {
			handler = mh
		}
		// A broken Mongo sink falls back to the plain handler silently;
		// the client must stay usable offline.
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// Debug logs at DEBUG level.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at INFO level.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at WARN level.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at ERROR level.
func Error(msg string, args ...any) { L.Error(msg, args...) }

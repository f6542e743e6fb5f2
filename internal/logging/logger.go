package logging

import (
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration.
// Every logger carries a run_id so lines from one invocation can be grouped.
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	level := ParseLevel(os.Getenv("SLING_LOG_LEVEL"))
	if cfg != nil && cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner output
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			// Shorten source paths
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = shortPath(source.File)
				}
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)

	return slog.New(handler).With("run_id", uuid.NewString())
}

// ParseLevel maps a level name to a slog level, defaulting to warn so the
// console stays readable unless asked otherwise
func ParseLevel(val string) slog.Level {
	switch strings.ToLower(val) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	if idx := strings.Index(file, "sling/"); idx != -1 {
		return file[idx+len("sling/"):]
	}
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/"); idx != -1 {
		if idx2 := strings.LastIndex(file, f[:idx]); idx2 != -1 {
			return file[idx2+len(f[:idx])+1:]
		}
	}
	parts := strings.Split(file, "/")
	return parts[len(parts)-1]
}

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup installs a JSON logger on stdout as the default and returns it.
// Extra sinks receive the same records, each filtering by its own level.
func Setup(level string, sinks ...slog.Handler) *slog.Logger {
	logger := New(os.Stdout, level, sinks...)
	slog.SetDefault(logger)
	return logger
}

func New(w io.Writer, level string, sinks ...slog.Handler) *slog.Logger {
	var h slog.Handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	if len(sinks) > 0 {
		h = append(fanout{h}, sinks...)
	}
	return slog.New(h)
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

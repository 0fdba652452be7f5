package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON slog.Logger writing to w. Adapters use it for
// best-effort persistence diagnostics; nothing in the domain logs.
func New(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Discard returns a logger that drops everything, for tests and for
// callers that opt out of diagnostics.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

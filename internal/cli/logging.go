package cli

import (
	"io"
	"log/slog"
)

// NewLogger writes text records at or above level to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(h).With("service", "availability")
}

package pkg

import (
	"io"
	"log/slog"
)

// NewLogger returns the application-wide structured JSON logger.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, nil))
}

package sl

import (
	"io"
	"log/slog"
)

// Err allows passing an error into slog attributes as it is (error type).
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// NewLogger returns a logger that discards everything, for tests.
func NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"bytes"
	"io"
	"log/slog"
)

// DiscardLogger returns a logger whose output goes nowhere. Most tests
// construct clients with it so that failures stay readable.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CaptureLogger returns a debug-level logger together with the buffer
// it writes to, for tests that assert on log output.
func CaptureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	return logger, buf
}

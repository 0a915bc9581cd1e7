package sim

import (
	"fmt"
	"log/slog"
)

// SlogMessenger emits resolution messages through slog.
type SlogMessenger struct{}

func (SlogMessenger) Msgf(format string, args ...any) {
	slog.Info(fmt.Sprintf(format, args...))
}

// CaptureMessenger collects messages for inspection; used in tests and
// for the end-of-encounter transcript.
type CaptureMessenger struct {
	Lines []string
}

func (c *CaptureMessenger) Msgf(format string, args ...any) {
	c.Lines = append(c.Lines, fmt.Sprintf(format, args...))
}

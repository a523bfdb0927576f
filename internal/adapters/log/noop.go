package log

import "github.com/bft-labs/id3mend/internal/ports"

// NoopLogger discards everything. Handy for tests and for library callers
// that configure scanning without caring about diagnostics.
type NoopLogger struct{}

// NewNoopLogger returns a logger that drops every message.
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{}
}

func (NoopLogger) Debug(msg string, fields ...ports.Field) {}
func (NoopLogger) Info(msg string, fields ...ports.Field) {}
func (NoopLogger) Warn(msg string, fields ...ports.Field)  {}
func (NoopLogger) Error(msg string, fields ...ports.Field) {}

package contracts

import (
	"io"
	"log/slog"
	"os"
)

// trace emits the two ordered diagnostic records for a violation: first the
// contextual message, then the raw offending value. Debugging tooling relies
// on this ordering; it must be preserved. The traces carry no control-flow
// effect, the caller still receives the violation error.
func (e *Engine) trace(msg string, value any) {
	e.logger.Warn(msg)
	e.logger.Warn("offending value", slog.Any("value", value))
}

// TraceFormat selects the trace logger's output format.
type TraceFormat string

const (
	// TraceJSON outputs structured records for log aggregation systems.
	TraceJSON TraceFormat = "json"
	// TraceText outputs human-readable records for development debugging.
	TraceText TraceFormat = "text"
)

// TraceOption configures NewTraceLogger.
type TraceOption func(*traceConfig)

type traceConfig struct {
	format TraceFormat
	output io.Writer
	level  slog.Level
}

// WithTraceFormat sets the output format; unknown formats are ignored.
func WithTraceFormat(f TraceFormat) TraceOption {
	return func(c *traceConfig) {
		switch f {
		case TraceJSON, TraceText:
			c.format = f
		}
	}
}

// WithTraceOutput sets the output destination, ignoring nil writers.
func WithTraceOutput(w io.Writer) TraceOption {
	return func(c *traceConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// WithTraceLevel sets the minimum record level.
func WithTraceLevel(l slog.Level) TraceOption {
	return func(c *traceConfig) { c.level = l }
}

// NewTraceLogger builds a slog.Logger suited for contract diagnostics.
// Defaults to human-readable text on stderr at warn level, since traces
// exist for humans chasing a failing contract.
func NewTraceLogger(opts ...TraceOption) *slog.Logger {
	cfg := &traceConfig{
		format: TraceText,
		output: os.Stderr,
		level:  slog.LevelWarn,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var handler slog.Handler
	if cfg.format == TraceJSON {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}
	return slog.New(handler)
}

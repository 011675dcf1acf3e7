package catalog

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a Refresher.
type Option func(*options)

type options struct {
	logger *slog.Logger
	tracer trace.Tracer
}

// WithLogger sets the logger used for refresh progress and retry
// warnings. Default is slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = log
	}
}

// WithTracer sets the tracer that spans each refresh. Default is a
// no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(opts *options) {
		opts.tracer = tracer
	}
}

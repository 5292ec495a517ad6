// Package telemetry collects timings for the load-parse-report pipeline.
//
// Collectors travel through a context, so instrumentation never changes
// function signatures; without a collector in the context all timing calls
// are no-ops. The CLI enables collection with the --telemetry flag and
// prints the report to stderr after the command finishes.
package telemetry

import (
	"context"
	"io"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timings of named operations.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes.
	Start(name string) Timer

	// Report writes the collected timings.
	Report(w io.Writer)
}

// Timer tracks one running operation.
type Timer interface {
	// End stops the timer.
	End()
}

// WithCollector stores a collector in the context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext returns the collector stored in the context, or a no-op
// collector when there is none.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}

type noOpCollector struct{}

func (noOpCollector) Start(string) Timer { return noOpTimer{} }
func (noOpCollector) Report(io.Writer)   {}

type noOpTimer struct{}

func (noOpTimer) End() {}

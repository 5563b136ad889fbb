package sink

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/trycatch/pkg/try/catch"
)

// Span records each failure on the span carried by ctx and marks the span
// as failed. Without a recording span in ctx it does nothing.
func Span(ctx context.Context) catch.Sink {
	return func(msg string, cause error) {
		span := trace.SpanFromContext(ctx)
		if !span.IsRecording() {
			return
		}

		attrs := []attribute.KeyValue{
			attribute.String("trycatch.kind", Kind(cause)),
		}
		if id, ok := catch.IncidentID(cause); ok {
			attrs = append(attrs, attribute.String("trycatch.incident", id.String()))
		}

		span.RecordError(cause, trace.WithAttributes(attrs...))
		span.SetStatus(codes.Error, msg)
	}
}

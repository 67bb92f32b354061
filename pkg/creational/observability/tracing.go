package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the library tracer instance, backed by the global OTel
// tracer provider. With no provider configured, spans are no-ops.
var tracer = otel.Tracer("creational")

// StartConstructionSpan starts a span covering one constructor invocation.
// The span name carries the slot key so concurrent constructions for
// different class identities are distinguishable in traces.
func StartConstructionSpan(ctx context.Context, registry, key string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "creational.construct."+key,
		trace.WithAttributes(
			attribute.String("registry", registry),
			attribute.String("slot.key", key),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, recording the error if non-nil.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span in context.
func AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}

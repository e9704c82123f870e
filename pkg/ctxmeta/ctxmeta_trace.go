package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// spanContext — контекст активного спана, если он валиден.
// Без настроенного TracerProvider спан no-op и идентификаторов нет.
func spanContext(ctx context.Context) (trace.SpanContext, bool) {
	if ctx == nil {
		return trace.SpanContext{}, false
	}
	sc := trace.SpanFromContext(ctx).SpanContext()
	return sc, sc.IsValid()
}

// TraceIDFromContext — trace_id текущей покупки для логов.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := spanContext(ctx)
	if !ok {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — span_id текущей операции.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc, ok := spanContext(ctx)
	if !ok {
		return "", false
	}
	return sc.SpanID().String(), true
}

// Пакет ctxmeta — нейтральный слой для метаданных запроса, которые прокидываются
// через context.Context (request_id, account_id, trace_id).
// HTTP-слой, Kafka-консьюмер и логгер зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	KeyRequestID ctxKey = "request_id"
	KeyAccountID ctxKey = "account_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithAccountID — аккаунт покупателя для логов. Неположительные id не сохраняются.
func WithAccountID(ctx context.Context, accountID int64) context.Context {
	if ctx == nil || accountID <= 0 {
		return ctx
	}
	return context.WithValue(ctx, KeyAccountID, accountID)
}

// AccountIDFromContext достаёт account_id из контекста.
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	v, ok := ctx.Value(KeyAccountID).(int64)
	return v, ok
}

package logger

import (
	"context"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"go.uber.org/zap"
)

var _ ports.Logger = (*ZapLogger)(nil)

// ZapLogger — реализация ports.Logger поверх zap.SugaredLogger.
// Метаданные из контекста (request_id, account_id, trace_id) добавляются полями.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — production-конфигурация (JSON) или development (консоль).
// Возвращает функцию Sync для вызова при остановке.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	return FromZap(logger), logger.Sync, nil
}

// FromZap — обернуть готовый *zap.Logger (тесты, zaptest/observer).
func FromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{base: logger, sugar: logger.Sugar()}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}

func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}

func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger { return z.base }

// with — sugared-логгер с полями из контекста; без метаданных возвращается базовый.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}

	var fields []any
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", rid)
	}
	if acc, ok := ctxmeta.AccountIDFromContext(ctx); ok {
		fields = append(fields, "account_id", acc)
	}
	if tr, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", tr)
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}

package logger_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/cinema_tickets/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_AddsContextFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	ctx := ctxmeta.WithRequestID(context.Background(), "req-1")
	ctx = ctxmeta.WithAccountID(ctx, 7)

	log.Infof(ctx, "purchase accepted amount=%d", 25)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "purchase accepted amount=25", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, int64(7), fields["account_id"])
}

func TestZapLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := logger.FromZap(zap.New(core))

	log.Infof(context.Background(), "skipped")
	log.Warnf(context.Background(), "warn %s", "w")
	log.Errorf(context.Background(), "error %s", "e")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Empty(t, entries[0].ContextMap())
}

func TestNewZapLogger_Modes(t *testing.T) {
	for _, isProd := range []bool{false, true} {
		log, sync, err := logger.NewZapLogger(isProd)
		require.NoError(t, err)
		require.NotNil(t, log.Base())
		_ = sync()
	}
}

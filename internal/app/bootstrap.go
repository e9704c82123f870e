package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Gunvolt24/cinema_tickets/config"
	"github.com/Gunvolt24/cinema_tickets/internal/cache/memory"
	"github.com/Gunvolt24/cinema_tickets/internal/kafka"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	rest "github.com/Gunvolt24/cinema_tickets/internal/transport/http"
	"github.com/Gunvolt24/cinema_tickets/internal/usecase"
	"github.com/Gunvolt24/cinema_tickets/pkg/logger"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
	"github.com/Gunvolt24/cinema_tickets/pkg/telemetry"
	"github.com/Gunvolt24/cinema_tickets/pkg/validate"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger        ports.Logger
	HTTPServer    *http.Server
	MetricsServer *http.Server          // nil — /metrics только на основном роутере
	KafkaConsumer ports.MessageConsumer // nil — приём заявок из Kafka выключен

	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — режим Gin по строке; неизвестное значение → debug с предупреждением.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch normalize(mode) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение и функцию очистки.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	var closers []closeFunc
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cErr := closers[i](); cErr != nil {
				logg.Warnf(ctx, "cleanup: %v", cErr)
			}
		}
	}
	closers = append(closers, cleanupLogger)

	metrics.MustRegister()

	if cfg.Tracing.Enabled {
		shutdownTrace, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			closers = append(closers, func() error { return shutdownTrace(context.Background()) })
		}
	}

	payments, closePayments, err := newPaymentProcessor(cfg, logg)
	if err != nil {
		release()
		return nil, func() {}, err
	}
	closers = append(closers, closePayments)

	seats, closeSeats, err := newSeatReservation(cfg, logg)
	if err != nil {
		release()
		return nil, func() {}, err
	}
	closers = append(closers, closeSeats)

	logg.Infof(ctx, "collaborators payment=%s seats=%s", cfg.Payment.Driver, cfg.Seats.Driver)

	service := usecase.NewTicketService(validate.NewPurchaseValidator(), payments, seats, logg)

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	router := rest.NewRouter(rest.NewHandler(service, logg, cfg.HTTP.HandlerTimeout), otelServiceName)
	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	if cfg.Metrics.Addr != "" && cfg.Metrics.Addr != cfg.HTTP.Addr {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		app.MetricsServer = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	if cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, service, logg)
		if cfg.Kafka.DedupCapacity > 0 {
			consumer.WithProcessedStore(memory.NewProcessedSet(cfg.Kafka.DedupCapacity, cfg.Kafka.DedupTTL))
		}
		app.KafkaConsumer = consumer
		closers = append(closers, consumer.Close)
	}

	return app, release, nil
}

// Run — запускает HTTP-серверы и консьюмер; ждёт отмены контекста или фоновой ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	servers := []*http.Server{a.HTTPServer}
	if a.MetricsServer != nil {
		servers = append(servers, a.MetricsServer)
	}
	for _, srv := range servers {
		go func(srv *http.Server) {
			a.Logger.Infof(ctx, "http server starting (addr=%s)", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "http server shutdown failed addr=%s: %v", srv.Addr, err)
		}
	}

	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}

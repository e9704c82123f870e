package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader, подменяется моками в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// purchaseHandler — бизнес-логика: разбор заявки из сообщения и покупка.
type purchaseHandler interface {
	PurchaseFromMessage(ctx context.Context, raw []byte) error
}

// ProcessedStore — память об уже обработанных сообщениях (дедупликация передоставок).
type ProcessedStore interface {
	Seen(key string) bool
	Remember(key string)
}

// Consumer читает заявки на покупку из топика и передаёт их в usecase.
type Consumer struct {
	reader         reader
	service        purchaseHandler
	log            ports.Logger
	processed      ProcessedStore
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор; оффсеты коммитятся вручную.
func NewConsumer(cfg *ConsumerConfig, service purchaseHandler, log ports.Logger) *Consumer {
	return newConsumer(kafka.NewReader(cfg.ReaderConfig()), cfg, service, log)
}

func newConsumer(r reader, cfg *ConsumerConfig, service purchaseHandler, log ports.Logger) *Consumer {
	return &Consumer{
		reader:         r,
		service:        service,
		log:            log,
		processTimeout: orDefault(cfg.ProcessTimeout, defaultProcessTimeout),
		retryInitial:   orDefault(cfg.RetryInitial, defaultRetryInitial),
		retryMax:       orDefault(cfg.RetryMax, defaultRetryMax),
		jitterRand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithProcessedStore включает пропуск повторно доставленных сообщений,
// которые уже были обработаны, но не успели закоммититься.
func (c *Consumer) WithProcessedStore(store ProcessedStore) *Consumer {
	c.processed = store
	return c
}

// Run — основной цикл:
// успешная покупка и отказ валидации коммитятся (отказ не ретраим никогда),
// сбой оплаты/резерва или таймаут повторяются для того же сообщения с backoff,
// пока обработка не завершится или контекст не будет отменён (at-least-once).
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "purchase consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial

	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// брокер недоступен: ждём с equal-jitter и повторяем
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		key := messageKey(&msg)
		if c.processed != nil && c.processed.Seen(key) {
			c.log.Warnf(ctx, "duplicate delivery %s skipped", key)
			c.commitSafely(ctx, &msg)
			continue
		}

		// reader группы не отдаёт некоммиченное сообщение повторно в той же сессии,
		// поэтому повторяем его здесь, не переходя к следующему оффсету
		if !c.processWithRetry(ctx, rc.Topic, &msg) {
			return ctx.Err()
		}
		if c.processed != nil {
			c.processed.Remember(key)
		}
		c.commitSafely(ctx, &msg)
	}
}

// Close закрывает reader; повторный вызов ничего не делает.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}

package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.CommandPublisher = (*Producer)(nil)

// writer — минимальный контракт над kafka.Writer.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ProducerConfig — параметры публикации команд в один топик.
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

// Producer публикует команды внешним системам (оплата, резерв мест).
// Ключ сообщения — id аккаунта: команды одного аккаунта попадают в одну партицию.
type Producer struct {
	writer    writer
	topic     string
	log       ports.Logger
	closeOnce sync.Once
}

// NewProducer — синхронный writer с подтверждением от всех реплик.
func NewProducer(cfg *ProducerConfig, log ports.Logger) *Producer {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		WriteTimeout:           orDefault(cfg.WriteTimeout, 10*time.Second),
		AllowAutoTopicCreation: true,
	}
	return newProducer(w, cfg.Topic, log)
}

func newProducer(w writer, topic string, log ports.Logger) *Producer {
	return &Producer{writer: w, topic: topic, log: log}
}

// Topic — топик, в который пишет producer.
func (p *Producer) Topic() string { return p.topic }

// Publish — отправка одной команды; повторов нет, ошибка возвращается вызывающему.
func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		metrics.CommandsPublished.WithLabelValues(p.topic, "error").Inc()
		p.log.Errorf(ctx, "publish failed topic=%s key=%s: %v", p.topic, key, err)
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	metrics.CommandsPublished.WithLabelValues(p.topic, "ok").Inc()
	return nil
}

// Close закрывает writer (дожидается отправки буфера).
func (p *Producer) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	defaultProcessTimeout = 5 * time.Second
	defaultRetryInitial   = 1 * time.Second
	defaultRetryMax       = 30 * time.Second
)

// ConsumerConfig — параметры чтения заявок из Kafka.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig — конфигурация kafka.Reader с ручным коммитом (CommitInterval=0).
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

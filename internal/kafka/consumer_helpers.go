package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

// handleMessage обрабатывает одно сообщение и решает, коммитить ли оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.PurchaseFromMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, domain.ErrInvalidPurchase):
		// отказ окончательный: повторная обработка даст тот же результат
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		reason, _ := domain.ReasonOf(err)
		c.log.Warnf(ctx, "purchase rejected offset=%d key=%s reason=%s: %v (skipped)", msg.Offset, msg.Key, reason, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "purchase failed offset=%d key=%s: %v (will retry same message)", msg.Offset, msg.Key, err)
		return false
	}
}

// processWithRetry повторяет обработку одного сообщения до решения о коммите.
// false — контекст отменён, сообщение осталось незакоммиченным.
func (c *Consumer) processWithRetry(ctx context.Context, topic string, msg *kafka.Message) bool {
	retry := c.retryInitial
	for {
		if c.handleMessage(ctx, topic, msg) {
			return true
		}
		if !c.sleepWithBackoff(ctx, c.withJitterEqual(retry)) {
			return false
		}
		retry = c.nextBackoff(retry)
	}
}

// messageKey — topic/partition/offset однозначно задаёт доставку сообщения.
func messageKey(msg *kafka.Message) string {
	return fmt.Sprintf("%s/%d/%d", msg.Topic, msg.Partition, msg.Offset)
}

// commitSafely коммитит оффсет; ошибка коммита только логируется.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждёт d или выходит по отмене контекста.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// nextBackoff удваивает интервал, не выходя за retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — половина задержки фиксирована, вторая половина случайна.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

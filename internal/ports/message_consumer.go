package ports

import "context"

// MessageConsumer — фоновый источник заявок на покупку (Kafka).
// Run блокируется до отмены контекста; Close можно вызывать повторно.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}

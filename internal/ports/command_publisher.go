package ports

import "context"

// CommandPublisher — отправка команды во внешнюю систему (брокер сообщений).
type CommandPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

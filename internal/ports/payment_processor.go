package ports

import "context"

// PaymentProcessor — внешний платёжный провайдер.
// Считается, что платёж всегда проходит; ошибка непрозрачна и возвращается как есть.
type PaymentProcessor interface {
	Charge(ctx context.Context, accountID int64, amount int) error
}

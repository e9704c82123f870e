package gateway

import (
	"context"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

var (
	_ ports.PaymentProcessor       = LogPaymentProcessor{}
	_ ports.SeatReservationService = LogSeatReservation{}
)

// LogPaymentProcessor — заглушка для локального запуска: только пишет в лог.
type LogPaymentProcessor struct{ Log ports.Logger }

func (p LogPaymentProcessor) Charge(ctx context.Context, accountID int64, amount int) error {
	p.Log.Infof(ctx, "charge account_id=%d amount=%d (log driver)", accountID, amount)
	return nil
}

// LogSeatReservation — заглушка резервирования мест.
type LogSeatReservation struct{ Log ports.Logger }

func (s LogSeatReservation) Reserve(ctx context.Context, accountID int64, seats int) error {
	s.Log.Infof(ctx, "reserve account_id=%d seats=%d (log driver)", accountID, seats)
	return nil
}

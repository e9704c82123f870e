package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

var (
	_ ports.PaymentProcessor       = (*KafkaPaymentProcessor)(nil)
	_ ports.SeatReservationService = (*KafkaSeatReservation)(nil)
)

// KafkaPaymentProcessor отправляет ChargeCommand в топик платёжной системы.
type KafkaPaymentProcessor struct {
	publisher ports.CommandPublisher
	currency  string
	now       func() time.Time
}

func NewKafkaPaymentProcessor(publisher ports.CommandPublisher, currency string) *KafkaPaymentProcessor {
	return &KafkaPaymentProcessor{publisher: publisher, currency: currency, now: time.Now}
}

func (p *KafkaPaymentProcessor) Charge(ctx context.Context, accountID int64, amount int) error {
	raw, err := json.Marshal(ChargeCommand{
		AccountID: accountID,
		Amount:    amount,
		Currency:  p.currency,
		RequestID: requestID(ctx),
		IssuedAt:  p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal charge command: %w", err)
	}
	return p.publisher.Publish(ctx, accountKey(accountID), raw)
}

// KafkaSeatReservation отправляет ReserveSeatsCommand в топик бронирования.
type KafkaSeatReservation struct {
	publisher ports.CommandPublisher
	now       func() time.Time
}

func NewKafkaSeatReservation(publisher ports.CommandPublisher) *KafkaSeatReservation {
	return &KafkaSeatReservation{publisher: publisher, now: time.Now}
}

func (s *KafkaSeatReservation) Reserve(ctx context.Context, accountID int64, seats int) error {
	raw, err := json.Marshal(ReserveSeatsCommand{
		AccountID: accountID,
		Seats:     seats,
		RequestID: requestID(ctx),
		IssuedAt:  s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal reserve command: %w", err)
	}
	return s.publisher.Publish(ctx, accountKey(accountID), raw)
}

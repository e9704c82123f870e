package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/cinema_tickets/config"
	"github.com/Gunvolt24/cinema_tickets/internal/gateway"
	"github.com/Gunvolt24/cinema_tickets/internal/kafka"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

var (
	ErrUnknownDriver   = errors.New("unknown driver")
	ErrStripeKeyNeeded = errors.New("stripe payment driver requires PAYMENT_STRIPE_KEY")
)

type closeFunc func() error

func noClose() error { return nil }

// newPaymentProcessor выбирает платёжный адаптер по PAYMENT_DRIVER.
func newPaymentProcessor(cfg *config.Config, log ports.Logger) (ports.PaymentProcessor, closeFunc, error) {
	switch normalize(cfg.Payment.Driver) {
	case config.DriverLog:
		return gateway.LogPaymentProcessor{Log: log}, noClose, nil
	case config.DriverKafka:
		producer := kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Payment.Topic,
			WriteTimeout: cfg.Payment.WriteTimeout,
		}, log)
		return gateway.NewKafkaPaymentProcessor(producer, cfg.Payment.Currency), producer.Close, nil
	case config.DriverStripe:
		if cfg.Payment.StripeKey == "" {
			return nil, nil, ErrStripeKeyNeeded
		}
		p := gateway.NewStripePaymentProcessor(cfg.Payment.StripeKey, cfg.Payment.Currency, cfg.Payment.StripePaymentMethod, log)
		return p, noClose, nil
	default:
		return nil, nil, fmt.Errorf("payment driver %q: %w", cfg.Payment.Driver, ErrUnknownDriver)
	}
}

// newSeatReservation выбирает адаптер резервирования по SEATS_DRIVER.
func newSeatReservation(cfg *config.Config, log ports.Logger) (ports.SeatReservationService, closeFunc, error) {
	switch normalize(cfg.Seats.Driver) {
	case config.DriverLog:
		return gateway.LogSeatReservation{Log: log}, noClose, nil
	case config.DriverKafka:
		producer := kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Seats.Topic,
			WriteTimeout: cfg.Seats.WriteTimeout,
		}, log)
		return gateway.NewKafkaSeatReservation(producer), producer.Close, nil
	default:
		return nil, nil, fmt.Errorf("seats driver %q: %w", cfg.Seats.Driver, ErrUnknownDriver)
	}
}

func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

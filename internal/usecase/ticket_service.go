package usecase

import (
	"context"
	"errors"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/cinema_tickets/pkg/metrics"
	"github.com/Gunvolt24/cinema_tickets/pkg/telemetry"
	"github.com/Gunvolt24/cinema_tickets/pkg/validate"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ ports.TicketPurchaser = (*TicketService)(nil)

// TicketService — прикладная логика покупки билетов (без знаний о транспорте).
// Состояния между вызовами не хранит.
type TicketService struct {
	validator ports.PurchaseValidator
	payments  ports.PaymentProcessor
	seats     ports.SeatReservationService
	log       ports.Logger
}

// NewTicketService — DI-конструктор.
func NewTicketService(
	validator ports.PurchaseValidator,
	payments ports.PaymentProcessor,
	seats ports.SeatReservationService,
	log ports.Logger,
) *TicketService {
	return &TicketService{
		validator: validator,
		payments:  payments,
		seats:     seats,
		log:       log,
	}
}

// PurchaseTickets — валидирует заявку, затем списывает оплату и резервирует места.
// Оплата и резервирование вызываются ровно по одному разу и только после успешной валидации.
// Ошибки внешних систем возвращаются без обёртки.
func (s *TicketService) PurchaseTickets(ctx context.Context, accountID int64, requests []domain.TicketRequest) error {
	ctx = ctxmeta.WithAccountID(ctx, accountID)
	ctx, span := telemetry.Tracer().Start(ctx, "TicketService.PurchaseTickets",
		trace.WithAttributes(
			attribute.Int64("account.id", accountID),
			attribute.Int("purchase.requests", len(requests)),
		),
	)
	defer span.End()

	order, err := s.validator.Validate(ctx, accountID, requests)
	if err != nil {
		s.reject(ctx, span, err)
		return err
	}
	span.SetAttributes(
		attribute.Int("purchase.amount", order.TotalAmount),
		attribute.Int("purchase.seats", order.TotalSeats),
	)

	if err := s.payments.Charge(ctx, order.AccountID, order.TotalAmount); err != nil {
		s.fail(ctx, span, "payment", err)
		return err
	}

	if err := s.seats.Reserve(ctx, order.AccountID, order.TotalSeats); err != nil {
		s.fail(ctx, span, "seat reservation", err)
		return err
	}

	metrics.PurchasesTotal.WithLabelValues("accepted").Inc()
	metrics.ChargedAmount.Add(float64(order.TotalAmount))
	for ticketType, n := range order.Tickets {
		metrics.TicketsSold.WithLabelValues(ticketType.String()).Add(float64(n))
	}

	s.log.Infof(ctx, "purchase completed amount=%d seats=%d tickets=%d",
		order.TotalAmount, order.TotalSeats, order.Tickets.Total())
	return nil
}

// Quote — только валидация и расчёт: внешние системы не вызываются.
func (s *TicketService) Quote(ctx context.Context, accountID int64, requests []domain.TicketRequest) (*domain.PurchaseOrder, error) {
	ctx = ctxmeta.WithAccountID(ctx, accountID)
	order, err := s.validator.Validate(ctx, accountID, requests)
	if err != nil {
		s.log.Warnf(ctx, "quote rejected err=%v", err)
		return nil, err
	}
	return order, nil
}

// PurchaseFromMessage — покупка по заявке, пришедшей из Kafka (raw JSON).
// Ошибка разбора — отказ с причиной MalformedRequest, до внешних систем дело не доходит.
func (s *TicketService) PurchaseFromMessage(ctx context.Context, raw []byte) error {
	accountID, requests, err := validate.DecodeTicketRequests(raw)
	if err != nil {
		reason, _ := domain.ReasonOf(err)
		metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
		metrics.PurchaseRejections.WithLabelValues(string(reason)).Inc()
		s.log.Warnf(ctx, "purchase message rejected reason=%s err=%v", reason, err)
		return err
	}
	return s.PurchaseTickets(ctx, accountID, requests)
}

func (s *TicketService) reject(ctx context.Context, span trace.Span, err error) {
	span.SetStatus(codes.Error, "purchase rejected")
	if !errors.Is(err, domain.ErrInvalidPurchase) {
		// валидатор вернул не отказ, а сбой
		s.fail(ctx, span, "validation", err)
		return
	}
	reason, _ := domain.ReasonOf(err)
	metrics.PurchasesTotal.WithLabelValues("rejected").Inc()
	metrics.PurchaseRejections.WithLabelValues(string(reason)).Inc()
	span.SetAttributes(attribute.String("purchase.reject_reason", string(reason)))
	s.log.Warnf(ctx, "purchase rejected reason=%s err=%v", reason, err)
}

func (s *TicketService) fail(ctx context.Context, span trace.Span, stage string, err error) {
	metrics.PurchasesTotal.WithLabelValues("failed").Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, stage+" failed")
	s.log.Errorf(ctx, "%s failed err=%v", stage, err)
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports/mocks"
	"github.com/Gunvolt24/cinema_tickets/internal/usecase"
	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
	"github.com/Gunvolt24/cinema_tickets/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type fixture struct {
	payments *mocks.MockPaymentProcessor
	seats    *mocks.MockSeatReservationService
	svc      *usecase.TicketService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	payments := mocks.NewMockPaymentProcessor(ctrl)
	seats := mocks.NewMockSeatReservationService(ctrl)
	return fixture{
		payments: payments,
		seats:    seats,
		svc:      usecase.NewTicketService(validate.NewPurchaseValidator(), payments, seats, noopLogger{}),
	}
}

func tickets(pairs ...any) []domain.TicketRequest {
	out := make([]domain.TicketRequest, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.NewTicketTypeRequest(pairs[i].(domain.TicketType), pairs[i+1].(int)))
	}
	return out
}

func TestPurchaseTickets_ChargesThenReserves(t *testing.T) {
	tests := []struct {
		name     string
		account  int64
		requests []domain.TicketRequest
		amount   int
		seats    int
	}{
		{"single adult", 1, tickets(domain.TicketAdult, 1), 25, 1},
		{"family", 1, tickets(domain.TicketAdult, 2, domain.TicketChild, 2, domain.TicketInfant, 1), 80, 4},
		{"same type aggregates", 1, tickets(domain.TicketAdult, 2, domain.TicketAdult, 1), 75, 3},
		{"upper limit", 1, tickets(domain.TicketAdult, 25), 625, 25},
		{"infant on lap", 7, tickets(domain.TicketAdult, 1, domain.TicketInfant, 1), 25, 1},
		{"order of requests irrelevant", 3, tickets(domain.TicketChild, 1, domain.TicketAdult, 1), 40, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			gomock.InOrder(
				f.payments.EXPECT().Charge(gomock.Any(), tt.account, tt.amount).Return(nil).Times(1),
				f.seats.EXPECT().Reserve(gomock.Any(), tt.account, tt.seats).Return(nil).Times(1),
			)

			require.NoError(t, f.svc.PurchaseTickets(context.Background(), tt.account, tt.requests))
		})
	}
}

func TestPurchaseTickets_RejectsWithoutCollaboratorCalls(t *testing.T) {
	tests := []struct {
		name     string
		account  int64
		requests []domain.TicketRequest
		reason   domain.Reason
	}{
		{"zero account", 0, tickets(domain.TicketAdult, 1), domain.ReasonInvalidAccount},
		{"negative account", -4, tickets(domain.TicketAdult, 1), domain.ReasonInvalidAccount},
		{"no tickets", 1, nil, domain.ReasonEmptyOrder},
		{"more infants than adults", 1, tickets(domain.TicketAdult, 1, domain.TicketInfant, 2), domain.ReasonTooManyInfants},
		{"over limit", 1, tickets(domain.TicketAdult, 26), domain.ReasonTooManyTickets},
		{"over limit after aggregation", 1, tickets(domain.TicketAdult, 20, domain.TicketChild, 6), domain.ReasonTooManyTickets},
		{"child alone", 1, tickets(domain.TicketChild, 1), domain.ReasonAdultRequired},
		{"infant alone", 1, tickets(domain.TicketInfant, 1), domain.ReasonAdultRequired},
		{"zero quantity", 1, tickets(domain.TicketAdult, 0), domain.ReasonInvalidQuantity},
		{"unknown type", 1, tickets(domain.TicketType("SENIOR"), 1), domain.ReasonInvalidTicketType},
		{"nil request", 1, []domain.TicketRequest{nil}, domain.ReasonMalformedRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// моки без EXPECT: любой вызов провалит тест
			f := newFixture(t)

			err := f.svc.PurchaseTickets(context.Background(), tt.account, tt.requests)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPurchase)

			reason, ok := domain.ReasonOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestPurchaseTickets_PaymentErrorReturnedUnchanged(t *testing.T) {
	f := newFixture(t)
	payErr := errors.New("card declined")

	f.payments.EXPECT().Charge(gomock.Any(), int64(1), 25).Return(payErr)

	err := f.svc.PurchaseTickets(context.Background(), 1, tickets(domain.TicketAdult, 1))
	require.Equal(t, payErr, err)
}

func TestPurchaseTickets_ReservationErrorReturnedUnchanged(t *testing.T) {
	f := newFixture(t)
	seatErr := errors.New("hall is full")

	gomock.InOrder(
		f.payments.EXPECT().Charge(gomock.Any(), int64(2), 50).Return(nil),
		f.seats.EXPECT().Reserve(gomock.Any(), int64(2), 2).Return(seatErr),
	)

	err := f.svc.PurchaseTickets(context.Background(), 2, tickets(domain.TicketAdult, 2))
	require.Equal(t, seatErr, err)
}

func TestPurchaseTickets_RepeatedCallsAreIndependent(t *testing.T) {
	f := newFixture(t)
	requests := tickets(domain.TicketAdult, 2, domain.TicketChild, 1)

	f.payments.EXPECT().Charge(gomock.Any(), int64(5), 65).Return(nil).Times(2)
	f.seats.EXPECT().Reserve(gomock.Any(), int64(5), 3).Return(nil).Times(2)

	require.NoError(t, f.svc.PurchaseTickets(context.Background(), 5, requests))
	require.NoError(t, f.svc.PurchaseTickets(context.Background(), 5, requests))
}

func TestPurchaseTickets_ContextCarriesAccount(t *testing.T) {
	f := newFixture(t)

	f.payments.EXPECT().Charge(gomock.Any(), int64(9), 25).DoAndReturn(
		func(ctx context.Context, _ int64, _ int) error {
			id, ok := ctxmeta.AccountIDFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, int64(9), id)
			return nil
		})
	f.seats.EXPECT().Reserve(gomock.Any(), int64(9), 1).Return(nil)

	require.NoError(t, f.svc.PurchaseTickets(context.Background(), 9, tickets(domain.TicketAdult, 1)))
}

func TestPurchaseTickets_ValidatorFailureReturnedAsIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockPurchaseValidator(ctrl)
	payments := mocks.NewMockPaymentProcessor(ctrl)
	seats := mocks.NewMockSeatReservationService(ctrl)
	boom := errors.New("boom")

	validator.EXPECT().Validate(gomock.Any(), int64(1), gomock.Any()).Return(nil, boom)

	svc := usecase.NewTicketService(validator, payments, seats, noopLogger{})
	err := svc.PurchaseTickets(context.Background(), 1, tickets(domain.TicketAdult, 1))
	require.Equal(t, boom, err)
}

func TestQuote_NoCollaboratorCalls(t *testing.T) {
	f := newFixture(t)

	order, err := f.svc.Quote(context.Background(), 1,
		tickets(domain.TicketAdult, 2, domain.TicketChild, 2, domain.TicketInfant, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.AccountID)
	assert.Equal(t, 80, order.TotalAmount)
	assert.Equal(t, 4, order.TotalSeats)
	assert.Equal(t, 1, order.Tickets[domain.TicketInfant])

	_, err = f.svc.Quote(context.Background(), 1, tickets(domain.TicketChild, 1))
	require.ErrorIs(t, err, domain.ErrInvalidPurchase)
}

func TestPurchaseFromMessage(t *testing.T) {
	t.Run("valid message", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.payments.EXPECT().Charge(gomock.Any(), int64(1), 80).Return(nil),
			f.seats.EXPECT().Reserve(gomock.Any(), int64(1), 4).Return(nil),
		)

		raw := `{"account_id":1,"tickets":[{"type":"ADULT","quantity":2},{"type":"CHILD","quantity":2},{"type":"INFANT","quantity":1}]}`
		require.NoError(t, f.svc.PurchaseFromMessage(context.Background(), []byte(raw)))
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name   string
			raw    string
			reason domain.Reason
		}{
			{"broken json", `{`, domain.ReasonMalformedRequest},
			{"unknown field", `{"account_id":1,"tickets":[],"vip":true}`, domain.ReasonMalformedRequest},
			{"trailing data", `{"account_id":1,"tickets":[{"type":"ADULT","quantity":1}]} {}`, domain.ReasonMalformedRequest},
			{"null line", `{"account_id":1,"tickets":[null]}`, domain.ReasonMalformedRequest},
			{"fractional account", `{"account_id":1.5,"tickets":[{"type":"ADULT","quantity":1}]}`, domain.ReasonInvalidAccount},
			{"fractional quantity", `{"account_id":1,"tickets":[{"type":"ADULT","quantity":1.5}]}`, domain.ReasonInvalidQuantity},
			{"too many infants", `{"account_id":1,"tickets":[{"type":"ADULT","quantity":1},{"type":"INFANT","quantity":2}]}`, domain.ReasonTooManyInfants},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)

				err := f.svc.PurchaseFromMessage(context.Background(), []byte(tc.raw))
				require.ErrorIs(t, err, domain.ErrInvalidPurchase)
				reason, _ := domain.ReasonOf(err)
				assert.Equal(t, tc.reason, reason)
			})
		}
	})
}

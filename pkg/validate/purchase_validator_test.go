package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/pkg/validate"
)

func req(t domain.TicketType, q int) domain.TicketRequest {
	return domain.NewTicketTypeRequest(t, q)
}

func TestPurchaseValidator_Valid(t *testing.T) {
	v := validate.NewPurchaseValidator()
	ctx := context.Background()

	cases := []struct {
		name     string
		requests []domain.TicketRequest
		amount   int
		seats    int
	}{
		{"single adult", []domain.TicketRequest{req(domain.TicketAdult, 1)}, 25, 1},
		{"mixed family", []domain.TicketRequest{
			req(domain.TicketAdult, 2), req(domain.TicketChild, 2), req(domain.TicketInfant, 1),
		}, 80, 4},
		{"same type aggregates", []domain.TicketRequest{req(domain.TicketAdult, 2), req(domain.TicketAdult, 1)}, 75, 3},
		{"maximum tickets", []domain.TicketRequest{req(domain.TicketAdult, 25)}, 625, 25},
		{"infants equal adults", []domain.TicketRequest{req(domain.TicketAdult, 2), req(domain.TicketInfant, 2)}, 50, 2},
		{"max spread over lines", []domain.TicketRequest{
			req(domain.TicketAdult, 10), req(domain.TicketChild, 10), req(domain.TicketInfant, 5),
		}, 400, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := v.Validate(ctx, 1, tc.requests)
			if err != nil {
				t.Fatalf("expected valid purchase, got: %v", err)
			}
			if order.AccountID != 1 || order.TotalAmount != tc.amount || order.TotalSeats != tc.seats {
				t.Fatalf("unexpected order: %+v, want amount=%d seats=%d", order, tc.amount, tc.seats)
			}
		})
	}
}

func TestPurchaseValidator_Rejects(t *testing.T) {
	v := validate.NewPurchaseValidator()
	ctx := context.Background()

	type testCase struct {
		name      string
		accountID int64
		requests  []domain.TicketRequest
		reason    domain.Reason
		msg       string
	}

	adult := []domain.TicketRequest{req(domain.TicketAdult, 1)}
	manyLines := make([]domain.TicketRequest, 26)
	for i := range manyLines {
		manyLines[i] = req(domain.TicketAdult, 1)
	}

	cases := []testCase{
		{"zero account", 0, adult, domain.ReasonInvalidAccount, "account id must be a positive integer"},
		{"negative account", -1, adult, domain.ReasonInvalidAccount, "account id must be a positive integer"},
		{"nil requests", 1, nil, domain.ReasonEmptyOrder, "no tickets requested"},
		{"empty requests", 1, []domain.TicketRequest{}, domain.ReasonEmptyOrder, "no tickets requested"},
		{"26 adults", 1, []domain.TicketRequest{req(domain.TicketAdult, 26)}, domain.ReasonTooManyTickets, "maximum 25 tickets"},
		{"26 over two lines", 1, []domain.TicketRequest{req(domain.TicketAdult, 20), req(domain.TicketChild, 6)},
			domain.ReasonTooManyTickets, "maximum 25 tickets"},
		{"26 single-ticket lines", 1, manyLines, domain.ReasonTooManyTickets, "maximum 25 tickets"},
		{"nil request", 1, []domain.TicketRequest{req(domain.TicketAdult, 1), nil},
			domain.ReasonMalformedRequest, "tickets[1]: invalid ticket request format"},
		{"typed nil request", 1, []domain.TicketRequest{req(domain.TicketAdult, 1), (*domain.TicketTypeRequest)(nil)},
			domain.ReasonMalformedRequest, "tickets[1]: invalid ticket request format"},
		{"unknown type", 1, []domain.TicketRequest{req("INVALID", 1)}, domain.ReasonInvalidTicketType, `invalid ticket type "INVALID"`},
		{"zero quantity", 1, []domain.TicketRequest{req(domain.TicketAdult, 0)}, domain.ReasonInvalidQuantity, "quantity must be a positive integer"},
		{"negative quantity", 1, []domain.TicketRequest{req(domain.TicketAdult, -6)}, domain.ReasonInvalidQuantity, "quantity must be a positive integer"},
		{"child without adult", 1, []domain.TicketRequest{req(domain.TicketChild, 1)}, domain.ReasonAdultRequired, "require an adult ticket"},
		{"infant without adult", 1, []domain.TicketRequest{req(domain.TicketInfant, 1)}, domain.ReasonAdultRequired, "require an adult ticket"},
		{"more infants than adults", 1, []domain.TicketRequest{req(domain.TicketAdult, 1), req(domain.TicketInfant, 2)},
			domain.ReasonTooManyInfants, "cannot have more infants (2) than adults (1)"},
		// порядок проверок: аккаунт раньше пустого заказа, лимит раньше типа билета
		{"account checked first", 0, nil, domain.ReasonInvalidAccount, "account id"},
		{"limit before type", 1, []domain.TicketRequest{req(domain.TicketAdult, 26), req("VIP", 1)},
			domain.ReasonTooManyTickets, "maximum 25 tickets"},
		{"huge quantities do not overflow", 1, []domain.TicketRequest{req(domain.TicketAdult, int(^uint(0)>>1)), req(domain.TicketAdult, 1)},
			domain.ReasonTooManyTickets, "maximum 25 tickets"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := v.Validate(ctx, tc.accountID, tc.requests)
			if err == nil {
				t.Fatalf("expected error, got order %+v", order)
			}
			if !errors.Is(err, validate.ErrInvalidPurchase) {
				t.Errorf("expected ErrInvalidPurchase, got %v", err)
			}
			if reason, _ := domain.ReasonOf(err); reason != tc.reason {
				t.Errorf("expected reason %q, got %q", tc.reason, reason)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Errorf("expected error message to contain %q, got %q", tc.msg, err.Error())
			}
		})
	}
}

// Перебор всех комбинаций до лимита: результат должен совпадать с правилами прайса.
func TestPurchaseValidator_AllCombinations(t *testing.T) {
	v := validate.NewPurchaseValidator()
	ctx := context.Background()

	for adults := 0; adults <= 26; adults++ {
		for children := 0; children <= 26-adults; children++ {
			for infants := 0; infants <= 26-adults-children; infants++ {
				var requests []domain.TicketRequest
				if adults > 0 {
					requests = append(requests, req(domain.TicketAdult, adults))
				}
				if children > 0 {
					requests = append(requests, req(domain.TicketChild, children))
				}
				if infants > 0 {
					requests = append(requests, req(domain.TicketInfant, infants))
				}

				total := adults + children + infants
				valid := total > 0 && total <= 25 && adults >= 1 && infants <= adults

				order, err := v.Validate(ctx, 42, requests)
				if valid != (err == nil) {
					t.Fatalf("a=%d c=%d i=%d: valid=%v err=%v", adults, children, infants, valid, err)
				}
				if !valid {
					continue
				}
				if order.TotalAmount != 25*adults+15*children || order.TotalSeats != adults+children {
					t.Fatalf("a=%d c=%d i=%d: unexpected order %+v", adults, children, infants, order)
				}
			}
		}
	}
}

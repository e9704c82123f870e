package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

func TestValidatePurchaseFromJSON_OK(t *testing.T) {
	raw := []byte(`{"account_id":1,"tickets":[{"type":"ADULT","quantity":2},{"type":"CHILD","quantity":2},{"type":"INFANT","quantity":1}]}`)

	order, err := ValidatePurchaseFromJSON(context.Background(), NewPurchaseValidator(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.TotalAmount != 80 || order.TotalSeats != 4 {
		t.Fatalf("unexpected order: %+v", order)
	}
}

func TestValidatePurchaseFromJSON_Reasons(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		reason domain.Reason
	}{
		{"not json", `{`, domain.ReasonMalformedRequest},
		{"unknown field", `{"account_id":1,"tickets":[],"coupon":"X"}`, domain.ReasonMalformedRequest},
		{"trailing data", `{"account_id":1,"tickets":[{"type":"ADULT","quantity":1}]} {}`, domain.ReasonMalformedRequest},
		{"quoted account", `{"account_id":"7","tickets":[{"type":"ADULT","quantity":1}]}`, domain.ReasonMalformedRequest},
		{"quoted quantity", `{"account_id":7,"tickets":[{"type":"ADULT","quantity":"2"}]}`, domain.ReasonMalformedRequest},
		{"fractional account", `{"account_id":1.5,"tickets":[{"type":"ADULT","quantity":1}]}`, domain.ReasonInvalidAccount},
		{"missing account", `{"tickets":[{"type":"ADULT","quantity":1}]}`, domain.ReasonInvalidAccount},
		{"zero account", `{"account_id":0,"tickets":[{"type":"ADULT","quantity":1}]}`, domain.ReasonInvalidAccount},
		{"no tickets", `{"account_id":1,"tickets":[]}`, domain.ReasonEmptyOrder},
		{"null line", `{"account_id":1,"tickets":[null]}`, domain.ReasonMalformedRequest},
		{"line without quantity", `{"account_id":1,"tickets":[{"type":"ADULT"}]}`, domain.ReasonMalformedRequest},
		{"unknown type", `{"account_id":1,"tickets":[{"type":"SENIOR","quantity":1}]}`, domain.ReasonInvalidTicketType},
		{"fractional quantity", `{"account_id":1,"tickets":[{"type":"ADULT","quantity":1.5}]}`, domain.ReasonInvalidQuantity},
		{"too many", `{"account_id":1,"tickets":[{"type":"ADULT","quantity":26}]}`, domain.ReasonTooManyTickets},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidatePurchaseFromJSON(context.Background(), NewPurchaseValidator(), []byte(tc.raw))
			if !errors.Is(err, ErrInvalidPurchase) {
				t.Fatalf("expected ErrInvalidPurchase, got %v", err)
			}
			if reason, _ := domain.ReasonOf(err); reason != tc.reason {
				t.Fatalf("expected reason %q, got %q (%v)", tc.reason, reason, err)
			}
		})
	}
}

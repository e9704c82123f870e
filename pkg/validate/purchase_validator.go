package validate

import (
	"context"
	"reflect"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

// Проверка, что PurchaseValidator удовлетворяет интерфейсу PurchaseValidator.
var _ ports.PurchaseValidator = (*PurchaseValidator)(nil)

// ErrInvalidPurchase — алиас доменной sentinel-ошибки, чтобы внешним слоям хватало этого пакета.
var ErrInvalidPurchase = domain.ErrInvalidPurchase

// PurchaseValidator — проверка заявки и расчёт суммы/мест. Состояния не хранит.
type PurchaseValidator struct{}

// NewPurchaseValidator — конструктор PurchaseValidator.
// Любая проблема возвращается как *domain.PurchaseError (errors.Is(err, ErrInvalidPurchase)).
func NewPurchaseValidator() *PurchaseValidator { return &PurchaseValidator{} }

// Validate — проверки по порядку, до первой ошибки:
// аккаунт, непустой заказ, лимит билетов, каждая строка, агрегированные правила.
func (v *PurchaseValidator) Validate(
	_ context.Context,
	accountID int64,
	requests []domain.TicketRequest,
) (*domain.PurchaseOrder, error) {
	if err := v.validateAccount(accountID); err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, domain.Rejectf(domain.ReasonEmptyOrder, "no tickets requested")
	}
	if err := v.validateRawCount(requests); err != nil {
		return nil, err
	}
	if err := v.validateRequests(requests); err != nil {
		return nil, err
	}

	counts := aggregate(requests)
	if err := v.validateCounts(counts); err != nil {
		return nil, err
	}
	return domain.NewPurchaseOrder(accountID, counts), nil
}

func (v *PurchaseValidator) validateAccount(accountID int64) error {
	if accountID <= 0 {
		return domain.Rejectf(domain.ReasonInvalidAccount, "account id must be a positive integer, got %d", accountID)
	}
	return nil
}

// validateRawCount — лимит по исходному списку, до разбора строк.
// Больше строк, чем билетов в лимите, быть не может: в каждой строке хотя бы один билет.
func (v *PurchaseValidator) validateRawCount(requests []domain.TicketRequest) error {
	if len(requests) > domain.MaxTicketsPerPurchase {
		return tooManyTickets()
	}
	total := 0
	for _, r := range requests {
		if isMissing(r) || r.Quantity() <= 0 {
			continue
		}
		// до сложения, чтобы не переполнить int
		if r.Quantity() > domain.MaxTicketsPerPurchase-total {
			return tooManyTickets()
		}
		total += r.Quantity()
	}
	return nil
}

func (v *PurchaseValidator) validateRequests(requests []domain.TicketRequest) error {
	for i, r := range requests {
		if isMissing(r) {
			return domain.Rejectf(domain.ReasonMalformedRequest, "tickets[%d]: invalid ticket request format", i)
		}
		if !r.TicketType().Valid() {
			return domain.Rejectf(domain.ReasonInvalidTicketType, "tickets[%d]: invalid ticket type %q", i, r.TicketType())
		}
		if r.Quantity() <= 0 {
			return domain.Rejectf(domain.ReasonInvalidQuantity, "tickets[%d]: quantity must be a positive integer", i)
		}
	}
	return nil
}

// validateCounts — правила по агрегированным количествам.
func (v *PurchaseValidator) validateCounts(counts domain.TicketCounts) error {
	if counts.Total() > domain.MaxTicketsPerPurchase {
		return tooManyTickets()
	}

	adults := counts[domain.TicketAdult]
	children := counts[domain.TicketChild]
	infants := counts[domain.TicketInfant]

	if (children > 0 || infants > 0) && adults == 0 {
		return domain.Rejectf(domain.ReasonAdultRequired, "child and infant tickets require an adult ticket")
	}
	if infants > adults {
		return domain.Rejectf(domain.ReasonTooManyInfants, "cannot have more infants (%d) than adults (%d)", infants, adults)
	}
	return nil
}

// isMissing — nil-интерфейс или интерфейс с nil-указателем внутри.
func isMissing(r domain.TicketRequest) bool {
	if r == nil {
		return true
	}
	rv := reflect.ValueOf(r)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func aggregate(requests []domain.TicketRequest) domain.TicketCounts {
	counts := make(domain.TicketCounts, len(domain.TicketTypes()))
	for _, r := range requests {
		counts[r.TicketType()] += r.Quantity()
	}
	return counts
}

func tooManyTickets() error {
	return domain.Rejectf(domain.ReasonTooManyTickets, "maximum %d tickets per purchase", domain.MaxTicketsPerPurchase)
}

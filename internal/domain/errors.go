package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidPurchase — базовая (sentinel) ошибка отклонённой покупки.
var ErrInvalidPurchase = errors.New("invalid purchase")

// Reason — код причины отказа.
type Reason string

const (
	ReasonInvalidAccount    Reason = "invalid_account"
	ReasonEmptyOrder        Reason = "empty_order"
	ReasonTooManyTickets    Reason = "too_many_tickets"
	ReasonInvalidTicketType Reason = "invalid_ticket_type"
	ReasonInvalidQuantity   Reason = "invalid_quantity"
	ReasonMalformedRequest  Reason = "malformed_request"
	ReasonAdultRequired     Reason = "adult_required"
	ReasonTooManyInfants    Reason = "too_many_infants"
)

// PurchaseError — отказ с кодом причины и человекочитаемым сообщением.
// errors.Is(err, ErrInvalidPurchase) == true для любой причины.
type PurchaseError struct {
	Reason  Reason
	Message string
}

// Rejectf — создать отказ с форматированным сообщением.
func Rejectf(reason Reason, format string, args ...any) *PurchaseError {
	return &PurchaseError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

func (e *PurchaseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPurchase, e.Message)
}

func (e *PurchaseError) Is(target error) bool { return target == ErrInvalidPurchase }

// ReasonOf — достаёт причину отказа из цепочки ошибок.
func ReasonOf(err error) (Reason, bool) {
	var pe *PurchaseError
	if errors.As(err, &pe) {
		return pe.Reason, true
	}
	return "", false
}

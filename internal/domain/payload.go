package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// PurchasePayload — внешнее представление покупки (HTTP, Kafka, файлы).
// Числа читаются как Number, чтобы дробные значения получали свою причину отказа.
type PurchasePayload struct {
	AccountID Number        `json:"account_id"`
	Tickets   []*TicketLine `json:"tickets"`
}

// TicketLine — одна строка заказа.
type TicketLine struct {
	Type     *string `json:"type"`
	Quantity *Number `json:"quantity"`
}

// Number — числовой литерал JSON как есть. В отличие от json.Number
// число в кавычках ("7") не принимается.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return fmt.Errorf("expected number, got string %s", b)
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = Number(num)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("0"), nil
	}
	return json.Marshal(json.Number(n))
}

func (n Number) String() string { return string(n) }

// NewPurchasePayload — собрать payload из доменных запросов (клиенты, тесты).
func NewPurchasePayload(accountID int64, requests ...TicketRequest) PurchasePayload {
	p := PurchasePayload{
		AccountID: Number(strconv.FormatInt(accountID, 10)),
		Tickets:   make([]*TicketLine, 0, len(requests)),
	}
	for _, r := range requests {
		t := string(r.TicketType())
		q := Number(strconv.Itoa(r.Quantity()))
		p.Tickets = append(p.Tickets, &TicketLine{Type: &t, Quantity: &q})
	}
	return p
}

// ToRequests — переводит payload в доменные запросы.
// Нецелый account_id сразу даёт InvalidAccount; неполная строка превращается в nil-запрос
// (валидатор ответит MalformedRequest), нецелое количество — в нулевое (InvalidQuantity).
func (p *PurchasePayload) ToRequests() (int64, []TicketRequest, error) {
	accountID, err := strconv.ParseInt(p.AccountID.String(), 10, 64)
	if err != nil {
		return 0, nil, Rejectf(ReasonInvalidAccount, "account_id must be a positive integer, got %q", p.AccountID.String())
	}

	requests := make([]TicketRequest, 0, len(p.Tickets))
	for _, line := range p.Tickets {
		if line == nil || line.Type == nil || line.Quantity == nil {
			requests = append(requests, nil)
			continue
		}
		quantity, convErr := strconv.Atoi(line.Quantity.String())
		if convErr != nil {
			quantity = 0
		}
		requests = append(requests, NewTicketTypeRequest(TicketType(*line.Type), quantity))
	}
	return accountID, requests, nil
}

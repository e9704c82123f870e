package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
	"github.com/Gunvolt24/cinema_tickets/internal/ports"
)

// DecodePurchase — строгий разбор заявки: неизвестные поля и хвост после объекта запрещены.
// Ошибка разбора — отказ с причиной MalformedRequest.
func DecodePurchase(raw []byte) (*domain.PurchasePayload, error) {
	var payload domain.PurchasePayload
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, domain.Rejectf(domain.ReasonMalformedRequest, "invalid json: %v", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, domain.Rejectf(domain.ReasonMalformedRequest, "invalid json: trailing data")
	}
	return &payload, nil
}

// DecodeTicketRequests — разбор JSON сразу в доменные запросы.
func DecodeTicketRequests(raw []byte) (int64, []domain.TicketRequest, error) {
	payload, err := DecodePurchase(raw)
	if err != nil {
		return 0, nil, err
	}
	return payload.ToRequests()
}

// ValidatePurchaseFromJSON — валидация заявки из JSON без побочных эффектов.
func ValidatePurchaseFromJSON(ctx context.Context, validator ports.PurchaseValidator, raw []byte) (*domain.PurchaseOrder, error) {
	accountID, requests, err := DecodeTicketRequests(raw)
	if err != nil {
		return nil, err
	}
	return validator.Validate(ctx, accountID, requests)
}

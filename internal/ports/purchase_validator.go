package ports

import (
	"context"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// PurchaseValidator — проверка и расчёт покупки без побочных эффектов.
type PurchaseValidator interface {
	Validate(ctx context.Context, accountID int64, requests []domain.TicketRequest) (*domain.PurchaseOrder, error)
}

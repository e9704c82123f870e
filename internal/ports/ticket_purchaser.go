package ports

import (
	"context"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// TicketPurchaser — прикладной сервис покупки, как его видит транспорт.
type TicketPurchaser interface {
	PurchaseTickets(ctx context.Context, accountID int64, requests []domain.TicketRequest) error
	Quote(ctx context.Context, accountID int64, requests []domain.TicketRequest) (*domain.PurchaseOrder, error)
}

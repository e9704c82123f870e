package ports

import "context"

// SeatReservationService — внешний сервис резервирования мест.
type SeatReservationService interface {
	Reserve(ctx context.Context, accountID int64, seats int) error
}

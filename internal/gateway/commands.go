package gateway

import (
	"context"
	"strconv"
	"time"

	"github.com/Gunvolt24/cinema_tickets/pkg/ctxmeta"
)

// ChargeCommand — команда платёжной системе списать сумму с аккаунта.
type ChargeCommand struct {
	AccountID int64     `json:"account_id"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	RequestID string    `json:"request_id,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
}

// ReserveSeatsCommand — команда системе бронирования зарезервировать места.
type ReserveSeatsCommand struct {
	AccountID int64     `json:"account_id"`
	Seats     int       `json:"seats"`
	RequestID string    `json:"request_id,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
}

func accountKey(accountID int64) string { return strconv.FormatInt(accountID, 10) }

func requestID(ctx context.Context) string {
	id, _ := ctxmeta.RequestIDFromContext(ctx)
	return id
}

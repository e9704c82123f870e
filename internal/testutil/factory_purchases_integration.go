//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/json"
	"math/big"

	"github.com/Gunvolt24/cinema_tickets/internal/domain"
)

// RandomAccountID — случайный положительный id, чтобы тесты не пересекались по ключам.
func RandomAccountID() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<40))
	if err != nil {
		return 1
	}
	return n.Int64() + 1
}

// MakePurchaseJSON — сериализованная заявка в формате сообщения Kafka / тела HTTP.
func MakePurchaseJSON(accountID int64, requests ...domain.TicketRequest) []byte {
	raw, _ := json.Marshal(domain.NewPurchasePayload(accountID, requests...))
	return raw
}

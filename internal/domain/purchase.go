package domain

// TicketCounts — количество билетов по типам после агрегации.
type TicketCounts map[TicketType]int

// Total — всего билетов.
func (c TicketCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Amount — итоговая стоимость по прайсу.
func (c TicketCounts) Amount() int {
	amount := 0
	for t, n := range c {
		amount += t.Price() * n
	}
	return amount
}

// Seats — сколько мест нужно зарезервировать.
func (c TicketCounts) Seats() int {
	seats := 0
	for t, n := range c {
		if t.TakesSeat() {
			seats += n
		}
	}
	return seats
}

// PurchaseOrder — результат успешной валидации покупки. Не хранится.
type PurchaseOrder struct {
	AccountID   int64        `json:"account_id"`
	TotalAmount int          `json:"total_amount"`
	TotalSeats  int          `json:"total_seats"`
	Tickets     TicketCounts `json:"tickets"`
}

// NewPurchaseOrder — считает сумму и места по агрегированным количествам.
func NewPurchaseOrder(accountID int64, counts TicketCounts) *PurchaseOrder {
	return &PurchaseOrder{
		AccountID:   accountID,
		TotalAmount: counts.Amount(),
		TotalSeats:  counts.Seats(),
		Tickets:     counts,
	}
}

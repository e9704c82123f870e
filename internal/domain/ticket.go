package domain

// TicketType — тип билета.
type TicketType string

const (
	TicketInfant TicketType = "INFANT"
	TicketChild  TicketType = "CHILD"
	TicketAdult  TicketType = "ADULT"
)

// MaxTicketsPerPurchase — максимум билетов в одной покупке.
const MaxTicketsPerPurchase = 25

// ticketPrices — цена одного билета в денежных единицах.
var ticketPrices = map[TicketType]int{
	TicketInfant: 0,
	TicketChild:  15,
	TicketAdult:  25,
}

// TicketTypes — все известные типы в стабильном порядке.
func TicketTypes() []TicketType {
	return []TicketType{TicketAdult, TicketChild, TicketInfant}
}

// Valid — известен ли тип.
func (t TicketType) Valid() bool {
	_, ok := ticketPrices[t]
	return ok
}

// Price — цена одного билета; для неизвестного типа 0.
func (t TicketType) Price() int { return ticketPrices[t] }

// TakesSeat — младенцы сидят на коленях у взрослого и места не занимают.
func (t TicketType) TakesSeat() bool {
	return t == TicketAdult || t == TicketChild
}

func (t TicketType) String() string { return string(t) }

// TicketRequest — всё, что умеет сообщить тип и количество билетов.
type TicketRequest interface {
	TicketType() TicketType
	Quantity() int
}

// TicketTypeRequest — неизменяемая пара (тип, количество).
type TicketTypeRequest struct {
	ticketType TicketType
	quantity   int
}

var _ TicketRequest = TicketTypeRequest{}

// NewTicketTypeRequest — конструктор. Значения не проверяются: это задача валидатора.
func NewTicketTypeRequest(ticketType TicketType, quantity int) TicketTypeRequest {
	return TicketTypeRequest{ticketType: ticketType, quantity: quantity}
}

func (r TicketTypeRequest) TicketType() TicketType { return r.ticketType }
func (r TicketTypeRequest) Quantity() int          { return r.quantity }

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PurchasesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchases_total",
			Help: "Number of purchase attempts by result",
		},
		[]string{"result"}, // accepted|rejected|failed
	)
	PurchaseRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchase_rejections_total",
			Help: "Number of rejected purchases by reason",
		},
		[]string{"reason"},
	)
	TicketsSold = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Number of tickets sold by type",
		},
		[]string{"type"},
	)
	ChargedAmount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ticket_charged_amount_total",
			Help: "Total amount sent to the payment processor",
		},
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	CommandsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collaborator_commands_published_total",
			Help: "Commands sent to payment and seat reservation systems",
		},
		[]string{"topic", "status"}, // ok|error
	)
)

var (
	ProcessedSetOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "processed_messages_set_ops_total",
			Help: "Processed purchase messages set operations",
		},
		[]string{"op"}, // hit|miss|expired|evicted
	)
	ProcessedSetSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "processed_messages_set_size",
			Help: "Number of remembered processed purchase messages",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторный вызов ничего не делает.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			PurchasesTotal, PurchaseRejections, TicketsSold, ChargedAmount,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, CommandsPublished,
			ProcessedSetOps, ProcessedSetSize,
		)
	})
}

package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix — префикс переменных окружения сервиса (TICKETS_HTTP_ADDR и т.д.).
const DefaultPrefix = "TICKETS"

// Драйверы внешних систем оплаты и резервирования.
const (
	DriverLog    = "log"
	DriverKafka  = "kafka"
	DriverStripe = "stripe"
)

type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"5s" envconfig:"HANDLER_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"10s" envconfig:"GRACEFUL_TIMEOUT"`
}

// Metrics — отдельный листенер для /metrics; пустой адрес — только на основном роутере.
type Metrics struct {
	Addr string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"cinema-tickets" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Kafka — consumer заявок на покупку.
type Kafka struct {
	Enabled        bool          `default:"true" envconfig:"ENABLED"`
	Brokers        []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic          string        `default:"ticket-purchases" envconfig:"TOPIC"`
	GroupID        string        `default:"cinema-tickets" envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last" envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"1s" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"30s" envconfig:"RETRY_MAX"`

	// DedupCapacity = 0 выключает пропуск повторных доставок.
	DedupCapacity int           `default:"10000" envconfig:"DEDUP_CAPACITY"`
	DedupTTL      time.Duration `default:"24h" envconfig:"DEDUP_TTL"`
}

// Payment — платёжная система: log|kafka|stripe.
type Payment struct {
	Driver              string        `default:"log" envconfig:"DRIVER"`
	Currency            string        `default:"GBP" envconfig:"CURRENCY"`
	Topic               string        `default:"payment-commands" envconfig:"TOPIC"`
	WriteTimeout        time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	StripeKey           string        `envconfig:"STRIPE_KEY"`
	StripePaymentMethod string        `envconfig:"STRIPE_PAYMENT_METHOD"`
}

// Seats — система резервирования мест: log|kafka.
type Seats struct {
	Driver       string        `default:"log" envconfig:"DRIVER"`
	Topic        string        `default:"seat-reservation-commands" envconfig:"TOPIC"`
	WriteTimeout time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	Metrics Metrics
	Tracing Tracing
	Kafka   Kafka
	Payment Payment
	Seats   Seats
	Logger  Logger
}

// Load — конфигурация из окружения с префиксом TICKETS.
func Load() (Config, error) { return LoadWithPrefix(DefaultPrefix) }

// LoadWithPrefix — то же с произвольным префиксом (удобно для тестов).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`

	GatewayBaseURL           string        `env:"GATEWAY_BASE_URL" required:"true"`
	GatewayRefundsPath       string        `env:"GATEWAY_REFUNDS_PATH" envDefault:"/v1/refunds"`
	GatewayAPIKey            string        `env:"GATEWAY_API_KEY" required:"true"`
	HTTPGatewayClientTimeout time.Duration `env:"HTTP_GATEWAY_CLIENT_TIMEOUT" envDefault:"20s"`

	// Gateway reconciliation poller
	PollerEnabled    bool          `env:"POLLER_ENABLED" envDefault:"true"`
	PollerInterval   time.Duration `env:"POLLER_INTERVAL" envDefault:"1m"`
	PollerPageSize   int           `env:"POLLER_PAGE_SIZE" envDefault:"100"`
	PollerStaleAfter time.Duration `env:"POLLER_STALE_AFTER" envDefault:"15m"`

	// Optional audit-event indexing; disabled when no addresses are set
	OpensearchUrls        []string `env:"OPENSEARCH_URLS"`
	OpensearchIndexEvents string   `env:"OPENSEARCH_INDEX_EVENTS" envDefault:"refund-events"`

	// Webhook processing mode: "sync" (direct) or "kafka" (async via Kafka)
	WebhookMode string `env:"WEBHOOK_MODE" envDefault:"sync"`

	// Kafka configuration
	KafkaBrokers              []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaRefundsTopic         string   `env:"KAFKA_REFUNDS_TOPIC" envDefault:"webhooks.refunds"`
	KafkaRefundsConsumerGroup string   `env:"KAFKA_REFUNDS_CONSUMER_GROUP" envDefault:"refund-service"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

package kafka

import (
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Config holds Kafka producer configuration
type Config struct {
	Brokers                []string
	ClientID               string
	AllowAutoTopicCreation bool
	RequestRetries         int
	DialTimeout            time.Duration
	ProduceTimeout         time.Duration
}

// Options translates the config into franz-go options.
func (c Config) Options() []kgo.Opt {
	opts := []kgo.Opt{kgo.SeedBrokers(c.Brokers...)}

	if c.ClientID != "" {
		opts = append(opts, kgo.ClientID(c.ClientID))
	}
	if c.AllowAutoTopicCreation {
		opts = append(opts, kgo.AllowAutoTopicCreation())
	}
	if c.RequestRetries > 0 {
		opts = append(opts, kgo.RequestRetries(c.RequestRetries))
	}
	if c.DialTimeout > 0 {
		opts = append(opts, kgo.DialTimeout(c.DialTimeout))
	}
	// bounds how long a buffered event may wait for acknowledgement
	if c.ProduceTimeout > 0 {
		opts = append(opts, kgo.RecordDeliveryTimeout(c.ProduceTimeout))
	}
	return opts
}

// NewWithConfig creates a new Kafka client from a config struct
func NewWithConfig(config Config) (KafkaClient, error) {
	return New(config.Options()...)
}

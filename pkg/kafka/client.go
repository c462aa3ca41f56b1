// Package kafka wraps franz-go for publishing domain events.
package kafka

import (
	"context"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaClient defines the producer operations the service uses
type KafkaClient interface {
	// Produce sends one record and waits for the broker acknowledgement.
	Produce(ctx context.Context, topic string, key, value []byte) error
	// ProduceAsync buffers one record and returns immediately. onDone, when
	// not nil, is called with the delivery result.
	ProduceAsync(ctx context.Context, topic string, key, value []byte, onDone func(error))
	// Flush waits until every buffered record is delivered or ctx ends.
	Flush(ctx context.Context) error
	Close() error
	GetClient() *kgo.Client
}

// Client represents a Kafka producer wrapper
type Client struct {
	client *kgo.Client
}

// New creates a new Kafka client with the provided options. Connections are
// established lazily on first use.
func New(opts ...kgo.Opt) (KafkaClient, error) {
	kafkaClient, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &Client{client: kafkaClient}, nil
}

func (k *Client) Produce(ctx context.Context, topic string, key, value []byte) error {
	record := &kgo.Record{Topic: topic, Key: key, Value: value}
	return k.client.ProduceSync(ctx, record).FirstErr()
}

func (k *Client) ProduceAsync(ctx context.Context, topic string, key, value []byte, onDone func(error)) {
	record := &kgo.Record{Topic: topic, Key: key, Value: value}
	k.client.Produce(ctx, record, func(_ *kgo.Record, err error) {
		if onDone != nil {
			onDone(err)
		}
	})
}

func (k *Client) Flush(ctx context.Context) error {
	return k.client.Flush(ctx)
}

// Close flushes nothing; call Flush first to drain buffered records.
func (k *Client) Close() error {
	if k.client != nil {
		k.client.Close()
	}
	return nil
}

// GetClient returns the underlying Kafka client for advanced operations
func (k *Client) GetClient() *kgo.Client {
	return k.client
}

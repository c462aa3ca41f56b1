package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"callcenter-service/pkg/kafka"
	"callcenter-service/pkg/logger"
	"callcenter-service/pkg/metrics"

	"github.com/oklog/ulid/v2"
)

type kafkaPublisher struct {
	client  kafka.KafkaClient
	topic   string
	logger  logger.LoggerInterface
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewKafkaPublisher publishes events to topic. Records are keyed by
// "entity:key" so every change to one record lands on the same partition.
// m may be nil.
func NewKafkaPublisher(client kafka.KafkaClient, topic string, logger logger.LoggerInterface, m *metrics.Metrics) Publisher {
	return &kafkaPublisher{
		client:  client,
		topic:   topic,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, eventType Type, entity string, key any, data any) {
	evt := Event{
		ID:         ulid.Make().String(),
		Type:       eventType,
		Entity:     entity,
		Key:        fmt.Sprint(key),
		OccurredAt: p.now().UTC(),
		Data:       data,
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.logger.ErrorContext(ctx, "Failed to encode event", "type", eventType, "key", evt.Key, "error", err)
		p.record(eventType, err)
		return
	}

	// the record outlives the request that produced it
	produceCtx := context.WithoutCancel(ctx)
	p.client.ProduceAsync(produceCtx, p.topic, []byte(entity+":"+evt.Key), payload, func(err error) {
		p.record(eventType, err)
		if err != nil {
			p.logger.ErrorContext(produceCtx, "Failed to publish event", "id", evt.ID, "type", eventType, "topic", p.topic, "error", err)
			return
		}
		p.logger.DebugContext(produceCtx, "Event published", "id", evt.ID, "type", eventType, "topic", p.topic)
	})
}

func (p *kafkaPublisher) record(eventType Type, err error) {
	if p.metrics != nil {
		p.metrics.EventPublished(string(eventType), err)
	}
}

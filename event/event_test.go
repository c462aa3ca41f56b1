package event

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"callcenter-service/pkg/logger"
	"callcenter-service/pkg/metrics"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"
)

type record struct {
	topic      string
	key, value []byte
}

type fakeKafka struct {
	mu      sync.Mutex
	records []record
	err     error
}

func (f *fakeKafka) Produce(_ context.Context, topic string, key, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record{topic, key, value})
	return f.err
}

func (f *fakeKafka) ProduceAsync(ctx context.Context, topic string, key, value []byte, onDone func(error)) {
	err := f.Produce(ctx, topic, key, value)
	if onDone != nil {
		onDone(err)
	}
}

func (f *fakeKafka) Flush(context.Context) error { return nil }
func (f *fakeKafka) Close() error                { return nil }
func (f *fakeKafka) GetClient() *kgo.Client      { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	client := &fakeKafka{}
	m := metrics.New("test")
	p := NewKafkaPublisher(client, "callcenter.events", logger.NoOpLogger(), m).(*kafkaPublisher)
	occurred := time.Date(2025, 2, 11, 8, 30, 0, 0, time.UTC)
	p.now = func() time.Time { return occurred }

	p.Publish(context.Background(), AgentDeleted, "agent", int64(1), map[string]int64{"calls": 2})

	require.Len(t, client.records, 1)
	rec := client.records[0]
	assert.Equal(t, "callcenter.events", rec.topic)
	assert.Equal(t, "agent:1", string(rec.key))

	var got struct {
		ID         string           `json:"id"`
		Type       string           `json:"type"`
		Entity     string           `json:"entity"`
		Key        string           `json:"key"`
		OccurredAt time.Time        `json:"occurred_at"`
		Data       map[string]int64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.value, &got))
	_, err := ulid.ParseStrict(got.ID)
	assert.NoError(t, err, "event ids are ULIDs")
	assert.Equal(t, "agent.deleted", got.Type)
	assert.Equal(t, "agent", got.Entity)
	assert.Equal(t, "1", got.Key)
	assert.True(t, occurred.Equal(got.OccurredAt))
	assert.Equal(t, int64(2), got.Data["calls"])

	expected := `
# HELP test_events_published_total Domain events handed to the broker, by type and result.
# TYPE test_events_published_total counter
test_events_published_total{result="ok",type="agent.deleted"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_events_published_total"))
}

func TestKafkaPublisher_FailureIsNotReturned(t *testing.T) {
	client := &fakeKafka{err: errors.New("broker unavailable")}
	m := metrics.New("test")
	p := NewKafkaPublisher(client, "callcenter.events", logger.NoOpLogger(), m)

	assert.NotPanics(t, func() {
		p.Publish(context.Background(), CallCreated, "call", int64(3), nil)
	})
	require.Len(t, client.records, 1)

	expected := `
# HELP test_events_published_total Domain events handed to the broker, by type and result.
# TYPE test_events_published_total counter
test_events_published_total{result="error",type="call.created"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "test_events_published_total"))
}

func TestKafkaPublisher_UnencodableData(t *testing.T) {
	client := &fakeKafka{}
	p := NewKafkaPublisher(client, "callcenter.events", logger.NoOpLogger(), nil)

	p.Publish(context.Background(), TicketUpdated, "ticket", int64(1), make(chan int))
	assert.Empty(t, client.records, "an event that cannot be encoded is dropped")
}

func TestKafkaPublisher_OutlivesRequestContext(t *testing.T) {
	var seen context.Context
	client := &ctxCapturingKafka{fakeKafka: &fakeKafka{}, seen: &seen}
	p := NewKafkaPublisher(client, "t", logger.NoOpLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Publish(ctx, CustomerCreated, "customer", "CUST001", nil)

	require.NotNil(t, seen)
	assert.NoError(t, seen.Err(), "a cancelled request must not cancel the record")
}

type ctxCapturingKafka struct {
	*fakeKafka
	seen *context.Context
}

func (c *ctxCapturingKafka) ProduceAsync(ctx context.Context, topic string, key, value []byte, onDone func(error)) {
	*c.seen = ctx
	c.fakeKafka.ProduceAsync(ctx, topic, key, value, onDone)
}

func TestNoopPublisher(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNoopPublisher().Publish(context.Background(), AgentCreated, "agent", 1, nil)
	})
}

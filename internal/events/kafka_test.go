package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_SendsJSON(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var e Event
		if err := json.Unmarshal(val, &e); err != nil {
			return err
		}
		if e.Type != OrderCreated || e.EntityID != "o-1" {
			return errors.New("unexpected event " + string(val))
		}
		return nil
	})
	p := NewKafkaPublisherWithProducer(producer, "dashboard-events")

	err := p.Publish(context.Background(), New(OrderCreated, "o-1", map[string]any{"total": 99.98}))
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	p := NewKafkaPublisherWithProducer(producer, "dashboard-events")

	err := p.Publish(context.Background(), New(CustomerDeleted, "c-1", nil))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	p := NewKafkaPublisherWithProducer(producer, "dashboard-events")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Publish(ctx, New(ProductCreated, "p-1", nil)), context.Canceled)
	require.NoError(t, p.Close())
}

func TestLogPublisher(t *testing.T) {
	assert.NoError(t, LogPublisher{}.Publish(context.Background(), New(IntegrationSynced, "i-1", nil)))
	assert.NoError(t, LogPublisher{}.Close())
}

package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"economy/events"
	"economy/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) Publish(subject string, data []byte) error {
	args := m.Called(subject, data)
	return args.Error(0)
}

func TestEventSubjectMapper(t *testing.T) {
	mapper := NewEventSubjectMapper("economy")

	assert.Equal(t, "economy.balance_changed", mapper.MapEventToSubject(events.BalanceChangeEvent{}))
	assert.Equal(t, "economy.jackpot_won", mapper.MapEventToSubject(events.JackpotWonEvent{}))
	assert.Equal(t, "economy.work_paid", mapper.MapEventToSubject(events.WorkPaidEvent{}))
	assert.Equal(t, "economy.persistence_failed", mapper.MapEventToSubject(events.PersistenceFailedEvent{}))
	assert.Len(t, mapper.EventTypes(), 4)
}

func TestNATSEventPublisher_Publish(t *testing.T) {
	publisher := new(MockMessagePublisher)
	var published []byte
	publisher.On("Publish", "economy.jackpot_won", mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(1).([]byte)
	}).Return(nil)

	p := NewNATSEventPublisher(publisher, NewEventSubjectMapper("economy"))
	p.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }

	err := p.Publish(events.JackpotWonEvent{UserID: 123456, Payout: 500, Jackpot: 4500})
	require.NoError(t, err)

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(published, &envelope))
	assert.Equal(t, "jackpot_won", envelope.EventType)
	assert.Equal(t, "economy-ledger", envelope.SourceService)
	assert.Equal(t, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), envelope.Timestamp)
	_, err = uuid.Parse(envelope.EventID)
	assert.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, map[string]any{
		"user_id": float64(123456),
		"payout":  float64(500),
		"jackpot": float64(4500),
	}, payload)

	publisher.AssertExpectations(t)
}

func TestNATSEventPublisher_BalanceChangePayload(t *testing.T) {
	publisher := new(MockMessagePublisher)
	var published []byte
	publisher.On("Publish", "economy.balance_changed", mock.Anything).Run(func(args mock.Arguments) {
		published = args.Get(1).([]byte)
	}).Return(nil)

	p := NewNATSEventPublisher(publisher, NewEventSubjectMapper("economy"))
	require.NoError(t, p.Publish(events.BalanceChangeEvent{
		UserID:          7,
		OldBalance:      1000,
		NewBalance:      900,
		TransactionType: models.TransactionTypeCoinLoss,
		ChangeAmount:    -100,
	}))

	var envelope EventEnvelope
	require.NoError(t, json.Unmarshal(published, &envelope))
	assert.JSONEq(t, `{
		"user_id": 7,
		"old_balance": 1000,
		"new_balance": 900,
		"transaction_type": "coin_loss",
		"change_amount": -100
	}`, string(envelope.Payload))
}

func TestNATSEventPublisher_PublishError(t *testing.T) {
	publisher := new(MockMessagePublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("nats: connection closed"))

	p := NewNATSEventPublisher(publisher, NewEventSubjectMapper("economy"))

	err := p.Publish(events.WorkPaidEvent{UserID: 1, Amount: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection closed")
}

func TestNATSEventPublisher_Attach(t *testing.T) {
	publisher := new(MockMessagePublisher)
	delivered := make(chan string, 1)
	publisher.On("Publish", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		delivered <- args.String(0)
	}).Return(nil)

	bus := events.NewBus()
	NewNATSEventPublisher(publisher, NewEventSubjectMapper("economy")).Attach(bus)

	bus.Emit(context.Background(), events.BalanceChangeEvent{
		UserID:          1,
		OldBalance:      0,
		NewBalance:      100,
		TransactionType: models.TransactionTypeWork,
		ChangeAmount:    100,
	})

	select {
	case subject := <-delivered:
		assert.Equal(t, "economy.balance_changed", subject)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not forwarded")
	}
}

func TestNATSClient_PublishWithoutConnection(t *testing.T) {
	client := NewNATSClient("nats://localhost:4222")

	assert.Error(t, client.Publish("economy.work_paid", []byte("{}")))
	assert.NoError(t, client.Close())
}

package events

import (
	"context"
	"sync"

	"economy/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange     EventType = "balance_change"
	EventTypeJackpotWon        EventType = "jackpot_won"
	EventTypeWorkPaid          EventType = "work_paid"
	EventTypePersistenceFailed EventType = "persistence_failed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a balance change that occurred
type BalanceChangeEvent struct {
	UserID          int64                  `json:"user_id"`
	OldBalance      int64                  `json:"old_balance"`
	NewBalance      int64                  `json:"new_balance"`
	TransactionType models.TransactionType `json:"transaction_type"`
	ChangeAmount    int64                  `json:"change_amount"`
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// JackpotWonEvent represents a jackpot payout
type JackpotWonEvent struct {
	UserID  int64 `json:"user_id"`
	Payout  int64 `json:"payout"`
	Jackpot int64 `json:"jackpot"` // Pool left after the payout
}

func (e JackpotWonEvent) Type() EventType {
	return EventTypeJackpotWon
}

// WorkPaidEvent represents earnings credited by the work action
type WorkPaidEvent struct {
	UserID int64 `json:"user_id"`
	Amount int64 `json:"amount"`
}

func (e WorkPaidEvent) Type() EventType {
	return EventTypeWorkPaid
}

// PersistenceFailedEvent is raised when the ledger could not be written.
// The in-memory state stands.
type PersistenceFailedEvent struct {
	Op    string `json:"op"`
	Error string `json:"error"`
}

func (e PersistenceFailedEvent) Type() EventType {
	return EventTypePersistenceFailed
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Emitter dispatches events to subscribers
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking the ledger
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus holds events raised during one ledger command.
// Flushes to the underlying emitter once the command has been persisted.
type TransactionalBus struct {
	real    Emitter
	pending []Event // stashed until Flush
}

func NewTransactionalBus(real Emitter) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Pending returns the staged events
func (b *TransactionalBus) Pending() []Event {
	return b.pending
}

// Flush emits all staged events and clears the queue.
// A nil underlying emitter drops them.
func (b *TransactionalBus) Flush(ctx context.Context) {
	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing pending ledger events")

	if b.real != nil {
		// Handlers outlive the command, so they get a fresh context
		eventCtx := context.Background()
		for _, ev := range b.pending {
			b.real.Emit(eventCtx, ev)
		}
	}
	b.pending = nil
}

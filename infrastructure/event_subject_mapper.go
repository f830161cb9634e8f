package infrastructure

import (
	"fmt"

	"economy/events"
)

// EventSubjectMapper maps ledger events to NATS subjects
type EventSubjectMapper struct {
	prefix string
}

// NewEventSubjectMapper creates a mapper publishing under prefix, e.g. "economy"
func NewEventSubjectMapper(prefix string) *EventSubjectMapper {
	return &EventSubjectMapper{prefix: prefix}
}

// MapEventToSubject converts an event to its subject
func (m *EventSubjectMapper) MapEventToSubject(event events.Event) string {
	switch event.Type() {
	case events.EventTypeBalanceChange:
		return m.prefix + ".balance_changed"
	case events.EventTypeJackpotWon:
		return m.prefix + ".jackpot_won"
	case events.EventTypeWorkPaid:
		return m.prefix + ".work_paid"
	case events.EventTypePersistenceFailed:
		return m.prefix + ".persistence_failed"
	default:
		return fmt.Sprintf("%s.unknown.%s", m.prefix, event.Type())
	}
}

// EventTypes returns every event type that is forwarded
func (m *EventSubjectMapper) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventTypeBalanceChange,
		events.EventTypeJackpotWon,
		events.EventTypeWorkPaid,
		events.EventTypePersistenceFailed,
	}
}

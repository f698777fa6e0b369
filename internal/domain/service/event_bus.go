package service

import (
	"context"
	"time"

	"fleetdesk/internal/domain/entity"
)

// ReminderEventKind is the type of a reminder change event.
type ReminderEventKind string

const (
	EventCreated         ReminderEventKind = "created"
	EventUpdated         ReminderEventKind = "updated"
	EventDeleted         ReminderEventKind = "deleted"
	EventToggledActive   ReminderEventKind = "toggled_active"
	EventToggledComplete ReminderEventKind = "toggled_completed"
)

// ReminderEvent is the typed payload broadcast after a successful reminder
// mutation. Created/updated events carry the affected record; deleted and
// toggle events carry the resolved identifier (preferring the external id).
type ReminderEvent struct {
	ID         string            `json:"id"`
	Kind       ReminderEventKind `json:"kind"`
	Origin     string            `json:"origin,omitempty"` // id of the emitting list view
	Reminder   *entity.Reminder  `json:"reminder,omitempty"`
	Identifier string            `json:"identifier,omitempty"`
	NewState   *bool             `json:"new_state,omitempty"`
	VehicleRef string            `json:"vehicle_ref,omitempty"`
	RequestID  string            `json:"request_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// TriggersReload reports whether consumers other than the originating view
// should reload their list on this event. Deleted events are excluded: the
// deleting view already performs an authoritative reload, and a second one
// per mounted consumer would only amplify load.
func (e *ReminderEvent) TriggersReload() bool {
	switch e.Kind {
	case EventCreated, EventUpdated, EventToggledActive, EventToggledComplete:
		return true
	default:
		return false
	}
}

// EventBus is the in-process publish/subscribe channel that keeps mounted
// list views consistent. It replaces ambient global broadcast with typed
// payloads scoped to the application's lifetime.
type EventBus interface {
	// Publish delivers the event to every current subscriber. Delivery is
	// best-effort: a subscriber that stopped draining its channel is skipped.
	Publish(ctx context.Context, event *ReminderEvent)

	// Subscribe registers a consumer and returns its event channel together
	// with an unsubscribe function. Unsubscribing closes the channel.
	Subscribe(name string) (<-chan *ReminderEvent, func())

	// Close tears down all subscriptions.
	Close()
}

// EventPublisher fans reminder events out across service instances, so list
// views mounted against another replica converge too. Implementations are
// provider-switched: no-op, local HTTP push, or Google Pub/Sub.
type EventPublisher interface {
	// PublishReminderEvent publishes an event for cross-instance processing.
	PublishReminderEvent(ctx context.Context, event *ReminderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

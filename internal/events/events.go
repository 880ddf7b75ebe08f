// Package events publishes change notifications for business entities.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

const (
	ProductCreated     = "product.created"
	ProductUpdated     = "product.updated"
	ProductDeleted     = "product.deleted"
	CustomerCreated    = "customer.created"
	CustomerUpdated    = "customer.updated"
	CustomerDeleted    = "customer.deleted"
	OrderCreated       = "order.created"
	OrderUpdated       = "order.updated"
	OrderDeleted       = "order.deleted"
	IntegrationCreated = "integration.created"
	IntegrationUpdated = "integration.updated"
	IntegrationDeleted = "integration.deleted"
	IntegrationSynced  = "integration.synced"
)

type Event struct {
	Type     string    `json:"type"`
	EntityID string    `json:"entityId"`
	At       time.Time `json:"at"`
	Payload  any       `json:"payload,omitempty"`
}

func New(eventType, entityID string, payload any) Event {
	return Event{Type: eventType, EntityID: entityID, At: time.Now().UTC(), Payload: payload}
}

// Publisher delivers events. Publishing is best effort: callers log a
// failure and carry on, the change is already stored.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// LogPublisher writes events to the standard logger. It is used when no
// broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, e Event) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	log.Printf("📣 event %s", b)
	return nil
}

func (LogPublisher) Close() error { return nil }

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(ctx context.Context, e Event) error { return nil }
func (Nop) Close() error                               { return nil }

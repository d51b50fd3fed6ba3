// Package sse streams store change events to connected clients over
// Server-Sent Events. The store publishes changes through the EventEmitter
// interface; the manager fans them out to every connected client.
package sse

import (
	"time"

	"github.com/brightsideapp/brightside-server/internal/store"
)

// EventType identifies an SSE event.
type EventType string

// Event types.
const (
	EventConnected        EventType = "connected"
	EventHeartbeat        EventType = "heartbeat"
	EventBusinessAdded    EventType = "business.added"
	EventBusinessUpdated  EventType = "business.updated"
	EventReviewAdded      EventType = "review.added"
	EventReviewUpdated    EventType = "review.updated"
	EventBookmarkChanged  EventType = "bookmark.changed"
	EventDealAdded        EventType = "deal.added"
	EventDealRedeemed     EventType = "deal.redeemed"
	EventSessionUpdated   EventType = "session.updated"
	EventDirectoryChanged EventType = "directory.changed"
)

// Event is the wire format for one SSE message.
type Event struct {
	Type      EventType `json:"type"`
	Entity    string    `json:"entity,omitempty"`
	Action    string    `json:"action,omitempty"`
	ID        string    `json:"id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHeartbeatEvent creates a heartbeat event.
func NewHeartbeatEvent() Event {
	return Event{Type: EventHeartbeat, Timestamp: time.Now()}
}

// FromChangeEvent maps a store change to its SSE event.
func FromChangeEvent(change store.ChangeEvent) Event {
	event := Event{
		Entity:    change.Entity,
		Action:    change.Action,
		ID:        change.ID,
		Timestamp: time.Now(),
	}

	switch change.Entity + "." + change.Action {
	case "business.added":
		event.Type = EventBusinessAdded
	case "business.updated":
		event.Type = EventBusinessUpdated
	case "review.added":
		event.Type = EventReviewAdded
	case "review.updated":
		event.Type = EventReviewUpdated
	case "bookmark.added", "bookmark.updated":
		event.Type = EventBookmarkChanged
	case "deal.added":
		event.Type = EventDealAdded
	case "deal.redeemed":
		event.Type = EventDealRedeemed
	case "session.updated":
		event.Type = EventSessionUpdated
	default:
		event.Type = EventDirectoryChanged
	}
	return event
}

package events

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeGuildJoined    EventType = "guild_joined"
	EventTypeChannelCreated EventType = "channel_created"
	EventTypeChannelDeleted EventType = "channel_deleted"
	EventTypeChannelRenamed EventType = "channel_renamed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// GuildJoinedEvent is published when the bot is added to a guild it was not in before
type GuildJoinedEvent struct {
	GuildID   int64
	GuildName string
}

func (e GuildJoinedEvent) Type() EventType {
	return EventTypeGuildJoined
}

// ChannelCreatedEvent is published when a guild channel is created
type ChannelCreatedEvent struct {
	GuildID     int64
	ChannelID   int64
	ChannelName string
}

func (e ChannelCreatedEvent) Type() EventType {
	return EventTypeChannelCreated
}

// ChannelDeletedEvent is published when a guild channel is deleted
type ChannelDeletedEvent struct {
	GuildID     int64
	ChannelID   int64
	ChannelName string
}

func (e ChannelDeletedEvent) Type() EventType {
	return EventTypeChannelDeleted
}

// ChannelRenamedEvent is published when a guild channel's name changes
type ChannelRenamedEvent struct {
	GuildID   int64
	ChannelID int64
	OldName   string
	NewName   string
}

func (e ChannelRenamedEvent) Type() EventType {
	return EventTypeChannelRenamed
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

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

// Emit publishes an event to all registered handlers. Each handler runs in its own
// goroutine; a panicking handler is logged and does not affect the others.
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

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

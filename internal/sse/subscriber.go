package sse

import (
	"context"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/event"
	"github.com/hyoga-dev/PermafrostDig_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub so the
// browser can react to digs without polling.
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers forwarding handlers for every game event type.
// Payloads are already versioned typed structs, so they go over the
// wire as-is.
func (s *Subscriber) Subscribe() {
	types := []event.Type{
		event.DigResolved,
		event.ItemDiscovered,
		event.MemoryDiscovered,
		event.BoostArmed,
		event.AllowanceReset,
	}

	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
	}

	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	logger.FromContext(context.Background()).Info("SSE subscriber registered for event types", "types", names)
}

// forward broadcasts a bus event to all interested SSE clients
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}

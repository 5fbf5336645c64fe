package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hyoga-dev/PermafrostDig_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	DigResolved      = Type(domain.EventTypeDigResolved)
	ItemDiscovered   = Type(domain.EventTypeItemDiscovered)
	MemoryDiscovered = Type(domain.EventTypeMemoryDiscovered)
	BoostArmed       = Type(domain.EventTypeBoostArmed)
	AllowanceReset   = Type(domain.EventTypeAllowanceReset)
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// DigResolvedPayloadV1 is the typed payload for dig resolution events
type DigResolvedPayloadV1 struct {
	Outcome   domain.ResultKind `json:"outcome"`
	Timestamp int64             `json:"timestamp"`
}

// ItemDiscoveredPayloadV1 is the typed payload for item discovery events
type ItemDiscoveredPayloadV1 struct {
	Item      domain.DiscoveredItem `json:"item"`
	Timestamp int64                 `json:"timestamp"`
}

// MemoryDiscoveredPayloadV1 is the typed payload for memory discovery events
type MemoryDiscoveredPayloadV1 struct {
	MemoryID  string `json:"memory_id"`
	Author    string `json:"author"`
	Timestamp int64  `json:"timestamp"`
}

// BoostArmedPayloadV1 is the typed payload for boost armed events
type BoostArmedPayloadV1 struct {
	Rarity         domain.Rarity `json:"rarity"`
	RequiredClicks int           `json:"required_clicks"`
	BonusDigs      int           `json:"bonus_digs"`
	Timestamp      int64         `json:"timestamp"`
}

// AllowanceResetPayloadV1 is the typed payload for daily allowance reset events
type AllowanceResetPayloadV1 struct {
	Date      string `json:"date"`
	Remaining int    `json:"remaining"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewDigResolvedEvent creates a new dig resolution event
func NewDigResolvedEvent(outcome domain.ResultKind) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DigResolved,
		Payload: DigResolvedPayloadV1{
			Outcome:   outcome,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewItemDiscoveredEvent creates a new item discovery event
func NewItemDiscoveredEvent(item domain.DiscoveredItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ItemDiscovered,
		Payload: ItemDiscoveredPayloadV1{
			Item:      item,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewMemoryDiscoveredEvent creates a new memory discovery event
func NewMemoryDiscoveredEvent(memory domain.Memory) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MemoryDiscovered,
		Payload: MemoryDiscoveredPayloadV1{
			MemoryID:  memory.ID.String(),
			Author:    memory.Author,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBoostArmedEvent creates a new boost armed event
func NewBoostArmedEvent(boost domain.BoostEffect) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BoostArmed,
		Payload: BoostArmedPayloadV1{
			Rarity:         boost.Rarity,
			RequiredClicks: boost.RequiredClicks,
			BonusDigs:      boost.BonusDigs,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewAllowanceResetEvent creates a new allowance reset event
func NewAllowanceResetEvent(allowance domain.DailyAllowance) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AllowanceReset,
		Payload: AllowanceResetPayloadV1{
			Date:      allowance.Date,
			Remaining: allowance.Remaining,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; the game is single-user and handlers
	// are cheap ledger updates.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

package sse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents an event sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client represents a connected SSE client
type Client struct {
	ID           string
	EventChannel chan Event
	filter       map[string]bool
}

// wants reports whether the client subscribed to this event type.
// A nil filter means everything.
func (c *Client) wants(eventType string) bool {
	return c.filter == nil || c.filter[eventType]
}

// Hub fans bus events out to connected SSE clients. Clients register
// directly under the lock; only delivery runs on the hub goroutine, so
// fanout order matches publish order.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool

	broadcast chan Event
	shutdown  chan struct{}
	wg        sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]*Client),
		broadcast: make(chan Event, BroadcastBufferSize),
		shutdown:  make(chan struct{}),
	}
}

// Start starts the hub's delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts down the delivery loop and disconnects every client
func (h *Hub) Stop() {
	close(h.shutdown)
	h.wg.Wait()

	h.mu.Lock()
	h.closed = true
	for _, client := range h.clients {
		close(client.EventChannel)
	}
	h.clients = make(map[string]*Client)
	h.mu.Unlock()
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case event := <-h.broadcast:
			h.deliver(event)
		case <-h.shutdown:
			return
		}
	}
}

// deliver sends the event to every interested client. The read lock
// excludes Unregister's channel close, so sends never hit a closed
// channel. Sends never block; a client with a full buffer misses the
// event.
func (h *Hub) deliver(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if !client.wants(event.Type) {
			continue
		}
		select {
		case client.EventChannel <- event:
		default:
		}
	}
}

// Register adds a new client, optionally filtered to the given event
// types. On a stopped hub the returned client's channel is already
// closed, so the handler disconnects immediately.
func (h *Hub) Register(eventTypes []string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.filter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			client.filter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(client.EventChannel)
		return client
	}
	h.clients[client.ID] = client
	return client
}

// Unregister disconnects a client and releases its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for delivery to all interested clients
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		// Queue full, drop event
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders an event in the text/event-stream framing:
// "id: <id>\nevent: <type>\ndata: <json>\n\n"
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data)
	return buf.Bytes(), nil
}

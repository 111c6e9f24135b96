package sse

import (
	"sync"
)

// Change describes one entity mutation for live-refresh consumers.
type Change struct {
	EntityType string `json:"entity_type"`
	Action     string `json:"action"`
	ID         string `json:"id"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

// Hub manages SSE subscribers and change broadcasting
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Change]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Change]struct{}),
	}
}

// Subscribe registers a new subscriber and returns the change channel and cleanup function
func (h *Hub) Subscribe() (chan Change, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Change, 10)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers, ch)
		close(ch)
	}

	return ch, cleanup
}

// Publish sends a change to all subscribers
func (h *Hub) Publish(change Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- change:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// TotalSubscribers returns the number of active subscribers
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}

// Package eventbus provides in-process pub/sub for session lifecycle,
// tool, and memory events.
package eventbus

import (
	"sync"
	"time"
)

// Bus routes events to topic subscribers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Topic][]Handler
}

// New creates an empty event bus.
func New() *Bus {
	return &Bus{
		handlers: make(map[Topic][]Handler),
	}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic Topic, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], handler)
}

func (b *Bus) snapshot(topic Topic) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	handlers := make([]Handler, len(b.handlers[topic]))
	copy(handlers, b.handlers[topic])
	return handlers
}

// Publish delivers an event to all subscribers of the topic, calling
// handlers synchronously in registration order.
func (b *Bus) Publish(topic Topic, payload any) {
	event := Event{
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	for _, h := range b.snapshot(topic) {
		h(event)
	}
}

// PublishAsync delivers an event with each handler on its own goroutine.
func (b *Bus) PublishAsync(topic Topic, payload any) {
	event := Event{
		Topic:     topic,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	for _, h := range b.snapshot(topic) {
		go h(event)
	}
}

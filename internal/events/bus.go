// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Leolani Contributors

package events

import (
	"sync"

	"github.com/leolani/emissor-data/internal/logger"
)

// subscriberBuffer bounds how many undelivered events one subscriber may
// accumulate before publishes to it are dropped.
const subscriberBuffer = 128

// EventBus is a minimal in-process publish/subscribe bus with named topics.
// Publishing never blocks: a subscriber that falls behind by more than
// subscriberBuffer events loses the overflow, which is logged.
type EventBus struct {
	log *logger.Logger

	mu     sync.RWMutex
	subs   map[string][]chan Event
	closed bool
}

// NewEventBus creates an empty bus.
func NewEventBus(log *logger.Logger) *EventBus {
	if log == nil {
		log = logger.Nop()
	}

	return &EventBus{log: log, subs: make(map[string][]chan Event)}
}

// Subscribe returns a channel receiving all events published on any of the
// given topics. The channel is closed when the bus is closed.
func (b *EventBus) Subscribe(topics ...string) <-chan Event {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch
	}

	for _, topic := range topics {
		b.subs[topic] = append(b.subs[topic], ch)
	}

	return ch
}

// Publish delivers the payload to every subscriber of the topic.
func (b *EventBus) Publish(topic string, payload Payload) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	event := Event{Topic: topic, Payload: payload}
	for _, ch := range b.subs[topic] {
		select {
		case ch <- event:
		default:
			b.log.Warn().Str("topic", topic).Str("type", payload.Type).Msg("subscriber full, event dropped")
		}
	}
}

// Close closes every subscriber channel. Publishing after Close is a no-op.
func (b *EventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	seen := make(map[chan Event]bool)
	for _, subs := range b.subs {
		for _, ch := range subs {
			if !seen[ch] {
				seen[ch] = true
				close(ch)
			}
		}
	}
	b.subs = nil
}

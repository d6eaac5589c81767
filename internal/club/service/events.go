package service

import "sync"

// Event topics published over the live stream. Clients subscribe to a
// subset and refetch the affected resource on delivery.
const (
	TopicConfigUpdated       = "config_updated"
	TopicParticipantsUpdated = "participants_updated"
	TopicAuthChanged         = "auth_changed"
)

// Event is one pub-sub notification. Data carries a small JSON-friendly
// payload; subscribers treat events as refetch hints, not state.
type Event struct {
	Topic string `json:"topic"`
	Data  any    `json:"data,omitempty"`
}

// Subscriber is one connected event-stream client. Its channel is closed
// on unsubscribe; slow subscribers drop events rather than block writers.
type Subscriber struct {
	ch     chan Event
	topics map[string]struct{}
}

// Chan returns the subscriber's receive channel.
func (s *Subscriber) Chan() <-chan Event { return s.ch }

func (s *Subscriber) wants(topic string) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[topic]
	return ok
}

// EventBus fans service-layer notifications out to connected clients.
// It replaces client-side polling: services publish after every mutation
// and the HTTP layer streams events to browsers.
type EventBus struct {
	mu   sync.Mutex
	subs map[*Subscriber]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{subs: map[*Subscriber]struct{}{}}
}

// Subscribe registers a client. topics narrows delivery; empty means all.
func (b *EventBus) Subscribe(topics ...string) *Subscriber {
	sub := &Subscriber{ch: make(chan Event, 8)}
	if len(topics) > 0 {
		sub.topics = make(map[string]struct{}, len(topics))
		for _, t := range topics {
			sub.topics[t] = struct{}{}
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a client and closes its channel. Safe to call once
// per subscriber.
func (b *EventBus) Unsubscribe(sub *Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
		close(sub.ch)
	}
}

// Publish delivers the event to every subscriber interested in its
// topic. Full subscriber buffers are skipped.
func (b *EventBus) Publish(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		if !sub.wants(evt.Topic) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
		}
	}
}

// SubscriberCount reports connected clients, used by readiness metrics
// and tests.
func (b *EventBus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Package notify provides transient user feedback: notifications, the
// loading indicator and the cosmetic auto-save ticker.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for styling.
type Kind string

// Notification kinds.
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 3 * time.Second

// subscriberBuffer bounds each subscriber queue; events beyond it are dropped.
const subscriberBuffer = 32

// Event types published on the hub.
const (
	EventNotification = "notification"
	EventLoading      = "loading"
	EventPreview      = "preview"
)

// Notification is one message shown to the user.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Event is what subscribers receive. Data holds a Notification, a
// LoadingState or a PreviewState depending on Type.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// LoadingState reports whether the loading indicator is engaged.
type LoadingState struct {
	Active bool `json:"active"`
}

// PreviewState announces that a new preview is available.
type PreviewState struct {
	Revision uint64 `json:"revision"`
	Template string `json:"template"`
}

// Hub fans events out to subscribers and remembers recent notifications.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	recent []Notification
	ttl    time.Duration
	now    func() time.Time

	loadingMu    sync.Mutex
	loadingCount int
}

// NewHub creates a Hub whose notifications expire after ttl. A zero ttl
// selects DefaultTTL.
func NewHub(ttl time.Duration) *Hub {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Hub{
		subs: make(map[int]chan Event),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Notify records a notification and publishes it.
func (h *Hub) Notify(kind Kind, message string) Notification {
	now := h.now()
	n := Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(h.ttl),
	}

	h.mu.Lock()
	h.recent = append(h.pruneLocked(now), n)
	h.mu.Unlock()

	h.Publish(Event{Type: EventNotification, Data: n})
	return n
}

// Success is shorthand for Notify(KindSuccess, message).
func (h *Hub) Success(message string) Notification { return h.Notify(KindSuccess, message) }

// Error is shorthand for Notify(KindError, message).
func (h *Hub) Error(message string) Notification { return h.Notify(KindError, message) }

// Recent returns the notifications that have not yet expired, oldest first.
func (h *Hub) Recent() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recent = h.pruneLocked(h.now())
	return append([]Notification(nil), h.recent...)
}

// Publish delivers ev to every subscriber without blocking. A subscriber
// whose queue is full misses the event.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe returns a channel of events and a cancel func that closes it.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) pruneLocked(now time.Time) []Notification {
	kept := h.recent[:0]
	for _, n := range h.recent {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	return kept
}

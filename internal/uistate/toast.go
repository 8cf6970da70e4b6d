package uistate

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a toast for display.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Toast is one transient notification.
type Toast struct {
	ID      string
	Message string
	Kind    Kind
}

// DefaultTTL is how long a toast stays up before removing itself.
const DefaultTTL = 4 * time.Second

// Toasts is an ordered queue of notifications. Entries keep insertion order,
// expire independently after the TTL, and are never deduplicated.
type Toasts struct {
	mu    sync.Mutex
	ttl   time.Duration
	queue []Toast
}

func NewToasts(ttl time.Duration) *Toasts {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Toasts{ttl: ttl}
}

// Add appends a toast and schedules its self-removal. It returns the id so
// the caller can dismiss it early.
func (t *Toasts) Add(message string, kind Kind) string {
	id := uuid.NewString()

	t.mu.Lock()
	t.queue = append(t.queue, Toast{ID: id, Message: message, Kind: kind})
	t.mu.Unlock()

	time.AfterFunc(t.ttl, func() { t.Remove(id) })

	return id
}

// Remove dismisses a toast before its timeout. An unknown id is a no-op.
func (t *Toasts) Remove(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.queue {
		if t.queue[i].ID == id {
			t.queue = append(t.queue[:i], t.queue[i+1:]...)
			return
		}
	}
}

// Items returns a snapshot of the queue in insertion order.
func (t *Toasts) Items() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Toast, len(t.queue))
	copy(out, t.queue)

	return out
}

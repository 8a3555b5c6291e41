package notifier

import (
	"sync"
	"time"

	"salon-booking/internal/data/entity"

	"github.com/google/uuid"
)

// ToastTTL is how long a transient alert stays visible before it
// dismisses itself.
const ToastTTL = 5 * time.Second

type Toast struct {
	ID      uuid.UUID               `json:"id"`
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Kind    entity.NotificationKind `json:"kind"`
}

type toastEntry struct {
	toast     Toast
	expiresAt time.Time
}

// Queue holds the transient alerts currently on screen, FIFO in
// arrival order. Entries leave independently, either on expiry or on
// manual dismissal.
type Queue struct {
	mu      sync.Mutex
	entries []toastEntry
	now     func() time.Time
}

func NewQueue() *Queue {
	return &Queue{now: time.Now}
}

// newQueueAt builds a queue with an injected clock for tests.
func newQueueAt(now func() time.Time) *Queue {
	return &Queue{now: now}
}

func (q *Queue) Push(toast Toast) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.entries = append(q.entries, toastEntry{
		toast:     toast,
		expiresAt: q.now().Add(ToastTTL),
	})
}

// Active returns the not-yet-expired alerts in arrival order and drops
// the expired ones.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	kept := q.entries[:0]
	var active []Toast
	for _, e := range q.entries {
		if now.Before(e.expiresAt) {
			kept = append(kept, e)
			active = append(active, e.toast)
		}
	}
	q.entries = kept

	return active
}

// Dismiss removes one alert ahead of its expiry.
func (q *Queue) Dismiss(id uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.toast.ID == id {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

package notifier

import (
	"testing"
	"time"

	"salon-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue()
	first := Toast{ID: uuid.New(), Title: "first", Kind: entity.NotificationInfo}
	second := Toast{ID: uuid.New(), Title: "second", Kind: entity.NotificationSuccess}

	q.Push(first)
	q.Push(second)

	active := q.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
}

func TestQueue_ExpiryIsIndependent(t *testing.T) {
	now := time.Now()
	q := newQueueAt(func() time.Time { return now })

	old := Toast{ID: uuid.New(), Title: "old"}
	q.Push(old)

	now = now.Add(3 * time.Second)
	fresh := Toast{ID: uuid.New(), Title: "fresh"}
	q.Push(fresh)

	// 6s after the first push: the first alert is past its 5s TTL, the
	// second still has 2s left.
	now = now.Add(3 * time.Second)
	active := q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, fresh.ID, active[0].ID)

	now = now.Add(3 * time.Second)
	assert.Empty(t, q.Active())
}

func TestQueue_Dismiss(t *testing.T) {
	q := NewQueue()
	keep := Toast{ID: uuid.New()}
	drop := Toast{ID: uuid.New()}
	q.Push(keep)
	q.Push(drop)

	assert.True(t, q.Dismiss(drop.ID))
	assert.False(t, q.Dismiss(drop.ID))

	active := q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, keep.ID, active[0].ID)
}

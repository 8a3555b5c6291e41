package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	h := NewHub(zap.NewNop())

	a := &Client{ID: "a", Send: make(chan []byte, 1)}
	b := &Client{ID: "b", Send: make(chan []byte, 1)}
	h.Register(a)
	h.Register(b)

	h.Broadcast([]byte("hello"))

	assert.Equal(t, []byte("hello"), <-a.Send)
	assert.Equal(t, []byte("hello"), <-b.Send)
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	h := NewHub(zap.NewNop())

	slow := &Client{ID: "slow", Send: make(chan []byte)} // unbuffered, never read
	fast := &Client{ID: "fast", Send: make(chan []byte, 1)}
	h.Register(slow)
	h.Register(fast)

	h.Broadcast([]byte("x"))
	assert.Equal(t, []byte("x"), <-fast.Send)
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := NewHub(zap.NewNop())

	c := &Client{ID: "c", Send: make(chan []byte, 1)}
	h.Register(c)
	require.Equal(t, 1, h.ClientCount())

	h.Unregister(c)
	h.Unregister(c) // second unregister is a no-op

	_, open := <-c.Send
	assert.False(t, open)
	assert.Equal(t, 0, h.ClientCount())
}

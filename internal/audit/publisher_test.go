package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := NewMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	err := pub.Emit(context.Background(), Event{
		Query:   "Acme Corp",
		Mode:    "exact",
		Outcome: OutcomeNoMatch,
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Acme Corp", events[0].Query)
	assert.NotEmpty(t, events[0].ID, "emit must assign an ID")
	assert.False(t, events[0].Timestamp.IsZero(), "emit must assign a timestamp")
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := NewMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	for i := 0; i < 10; i++ {
		err := pub.Emit(context.Background(), Event{Query: "x", Outcome: OutcomeMatch})
		require.NoError(t, err)
	}

	// Close should drain all buffered events.
	pub.Close()

	events, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 10)
}

func TestPublisher_AsyncEventuallyStores(t *testing.T) {
	store := NewMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(10))
	defer pub.Close()

	err := pub.Emit(context.Background(), Event{Query: "x", Outcome: OutcomeMatch})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		events, err := store.List(context.Background())
		return err == nil && len(events) == 1
	}, time.Second, 10*time.Millisecond)
}

func TestPublisher_CloseIsIdempotent(t *testing.T) {
	pub := NewPublisher(NewMemoryStore(), WithAsyncBuffer(1))
	pub.Close()
	pub.Close()
}

func TestMemoryStore_Bounded(t *testing.T) {
	store := &MemoryStore{cap: 3}

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(context.Background(), Event{Threshold: i}))
	}

	events, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, 2, events[0].Threshold, "oldest events drop first")
	assert.Equal(t, 4, events[2].Threshold)
}

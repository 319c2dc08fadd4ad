package notify_test

import (
	"sync"
	"testing"
	"time"

	"food-ordering-api/logger"
	"food-ordering-api/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_DeliversAllQueuedEvents(t *testing.T) {
	var mu sync.Mutex
	var delivered []notify.Event

	n := notify.NewWithSink(16, 4, logger.New("test"), func(e notify.Event) {
		mu.Lock()
		delivered = append(delivered, e)
		mu.Unlock()
	})

	for i := 0; i < 10; i++ {
		n.Publish(notify.Event{
			Type:    notify.EventOrderCreated,
			OrderID: uint(i + 1),
		})
	}
	n.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 10)

	seen := make(map[uint]bool)
	for _, e := range delivered {
		assert.Equal(t, notify.EventOrderCreated, e.Type)
		assert.False(t, e.OccurredAt.IsZero(), "OccurredAt should be stamped on publish")
		seen[e.OrderID] = true
	}
	assert.Len(t, seen, 10)
}

func TestNotifier_PublishNeverBlocksWhenFull(t *testing.T) {
	gate := make(chan struct{})
	n := notify.NewWithSink(1, 1, logger.New("test"), func(notify.Event) {
		<-gate
	})

	// First event occupies the worker, second fills the queue. Everything
	// after that must be dropped without blocking.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			n.Publish(notify.Event{Type: notify.EventStatusChanged, OrderID: uint(i + 1)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}

	close(gate)
	n.Close()
}

func TestNotifier_CloseIsIdempotentAndDrains(t *testing.T) {
	var mu sync.Mutex
	count := 0

	n := notify.NewWithSink(8, 2, logger.New("test"), func(notify.Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	for i := 0; i < 8; i++ {
		n.Publish(notify.Event{Type: notify.EventOrderCancelled, OrderID: uint(i + 1)})
	}

	n.Close()
	n.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 8, count)
}

func TestNotifier_PreservesExplicitOccurredAt(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var mu sync.Mutex
	var got notify.Event
	n := notify.NewWithSink(1, 1, logger.New("test"), func(e notify.Event) {
		mu.Lock()
		got = e
		mu.Unlock()
	})

	n.Publish(notify.Event{Type: notify.EventOrderCreated, OrderID: 1, OccurredAt: at})
	n.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, got.OccurredAt.Equal(at))
}

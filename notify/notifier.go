// Package notify implements the fire-and-forget order event sink. Events are
// queued on a bounded channel and drained by a fixed pool of workers.
// Publishing never blocks the caller and delivery is at most once: events
// are dropped with a warning when the queue is full.
package notify

import (
	"sync"
	"time"

	"food-ordering-api/logger"
	"food-ordering-api/models"
)

type EventType string

const (
	EventOrderCreated   EventType = "order_created"
	EventOrderCancelled EventType = "order_cancelled"
	EventStatusChanged  EventType = "status_changed"
)

// Event describes an order lifecycle occurrence for downstream consumers.
type Event struct {
	Type        EventType          `json:"type"`
	OrderID     uint               `json:"order_id"`
	OrderNumber string             `json:"order_number"`
	FromStatus  models.OrderStatus `json:"from_status,omitempty"`
	ToStatus    models.OrderStatus `json:"to_status"`
	ChangedBy   uint               `json:"changed_by"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// Sink consumes delivered events. The default sink logs them; a real
// deployment would push to email/SMS/websocket instead.
type Sink func(Event)

type Notifier struct {
	events chan Event
	log    *logger.Logger
	sink   Sink
	wg     sync.WaitGroup

	closeOnce sync.Once
}

// New starts a notifier with the given queue capacity and worker count,
// delivering to the logging sink.
func New(queueSize, workers int, log *logger.Logger) *Notifier {
	return NewWithSink(queueSize, workers, log, nil)
}

// NewWithSink starts a notifier delivering to a custom sink. A nil sink
// falls back to logging.
func NewWithSink(queueSize, workers int, log *logger.Logger, sink Sink) *Notifier {
	if queueSize < 1 {
		queueSize = 1
	}
	if workers < 1 {
		workers = 1
	}
	n := &Notifier{
		events: make(chan Event, queueSize),
		log:    log,
		sink:   sink,
	}
	if n.sink == nil {
		n.sink = n.logEvent
	}
	n.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go n.worker()
	}
	return n
}

// Publish enqueues an event without blocking. If the queue is full the event
// is dropped and a warning is logged.
func (n *Notifier) Publish(e Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	select {
	case n.events <- e:
	default:
		n.log.Warn("notification_dropped", "notification queue full, dropping event",
			"event_type", string(e.Type), "order_id", e.OrderID)
	}
}

// Close stops accepting events and waits for queued ones to drain.
func (n *Notifier) Close() {
	n.closeOnce.Do(func() {
		close(n.events)
	})
	n.wg.Wait()
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for e := range n.events {
		n.sink(e)
	}
}

func (n *Notifier) logEvent(e Event) {
	n.log.Info("notification_sent", "order event",
		"event_type", string(e.Type),
		"order_id", e.OrderID,
		"order_number", e.OrderNumber,
		"from_status", string(e.FromStatus),
		"to_status", string(e.ToStatus),
		"changed_by", e.ChangedBy,
	)
}

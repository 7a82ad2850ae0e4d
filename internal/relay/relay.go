package relay

import (
	"context"
	"errors"
	"sync"

	"github.com/s21platform/chatbot-service/internal/model"
)

// ErrClosed is returned by Next once the relay is shut down and drained.
var ErrClosed = errors.New("relay is closed")

// Relay is a process-wide FIFO queue connecting background task completion
// to streaming delivery. Producers never block; capacity is unbounded.
//
// The relay is a work queue, not a broadcast bus: with several concurrent
// consumers each published event is delivered to exactly one of them. The
// service assumes a single connected event stream at a time.
type Relay struct {
	mu     sync.Mutex
	queue  []model.NotificationEvent
	wake   chan struct{}
	closed bool
}

func New() *Relay {
	return &Relay{
		wake: make(chan struct{}, 1),
	}
}

// Publish appends the event to the tail of the queue. It never blocks and
// cannot fail; events published after Close are dropped.
func (r *Relay) Publish(event model.NotificationEvent) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.queue = append(r.queue, event)
	r.mu.Unlock()

	r.signal()
}

// Next blocks until an event is available, the context is done, or the
// relay is closed and drained. Events are returned in publish order; each
// event is consumed by exactly one caller.
func (r *Relay) Next(ctx context.Context) (model.NotificationEvent, error) {
	for {
		r.mu.Lock()
		if len(r.queue) > 0 {
			event := r.queue[0]
			r.queue = r.queue[1:]
			remaining := len(r.queue)
			r.mu.Unlock()

			if remaining > 0 {
				r.signal()
			}
			return event, nil
		}
		closed := r.closed
		r.mu.Unlock()

		if closed {
			// Chain the wakeup so every other waiter observes the close.
			r.signal()
			return model.NotificationEvent{}, ErrClosed
		}

		select {
		case <-r.wake:
		case <-ctx.Done():
			return model.NotificationEvent{}, ctx.Err()
		}
	}
}

// Close stops the relay. Already queued events are still delivered;
// waiters blocked on an empty queue are released with ErrClosed.
func (r *Relay) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.signal()
}

func (r *Relay) signal() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

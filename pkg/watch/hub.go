package watch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Change describes one committed transition.
type Change[S, E comparable] struct {
	From  S
	To    S
	Event E
	// Seq increases by one for every change the hub publishes. A gap in
	// the sequence received by a subscriber means changes were dropped.
	Seq uint64
	At  time.Time
}

// Subscriber receives changes from a Hub.
// Implementations must be safe for concurrent use.
type Subscriber[S, E comparable] interface {
	// Receive returns a channel for receiving changes. The channel is
	// closed when the subscriber or the hub closes.
	Receive(ctx context.Context) <-chan Change[S, E]
	// Close unsubscribes and closes the receive channel. It is idempotent.
	Close() error
}

type subscriber[S, E comparable] struct {
	ch     chan Change[S, E]
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[S, E comparable](bufferSize int) *subscriber[S, E] {
	return &subscriber[S, E]{ch: make(chan Change[S, E], bufferSize)}
}

func (s *subscriber[S, E]) Receive(_ context.Context) <-chan Change[S, E] {
	return s.ch
}

func (s *subscriber[S, E]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers c unless the subscriber is closed or its buffer is full.
// alive reports whether the subscriber can still receive future changes.
func (s *subscriber[S, E]) send(c Change[S, E]) (alive bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- c:
	default:
		// Buffer full: the change is dropped for this subscriber only.
	}
	return true
}

// Hub fans committed transitions out to any number of subscribers without
// touching the dispatch path. Delivery is non-blocking: when a subscriber's
// buffer is full the change is dropped for that subscriber, but the
// subscription stays alive and later changes are delivered again. Seq gaps
// tell the consumer what it missed.
//
// All methods are safe for concurrent use.
type Hub[S, E comparable] struct {
	subscribers map[*subscriber[S, E]]struct{}
	bufferSize  int
	seq         atomic.Uint64
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewHub creates a hub whose subscribers buffer up to bufferSize changes.
// A minimum buffer size of 1 is enforced; a zero buffer would make every
// send blocking and defeat the non-blocking contract.
func NewHub[S, E comparable](bufferSize int) *Hub[S, E] {
	return &Hub[S, E]{
		subscribers: make(map[*subscriber[S, E]]struct{}),
		bufferSize:  max(bufferSize, 1),
		done:        make(chan struct{}),
	}
}

// Subscribe registers a new subscriber. The subscription is cleaned up when
// ctx is cancelled. Subscribing to a closed hub returns an already-closed
// subscriber.
func (h *Hub[S, E]) Subscribe(ctx context.Context) Subscriber[S, E] {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := newSubscriber[S, E](h.bufferSize)
	if h.closed {
		_ = sub.Close()
		return sub
	}
	h.subscribers[sub] = struct{}{}

	if ctx.Done() != nil {
		h.cleanupWg.Add(1)
		go func() {
			defer h.cleanupWg.Done()
			select {
			case <-ctx.Done():
				h.unsubscribe(sub)
			case <-h.done:
				// Hub closed; Close already took care of the subscriber.
			}
		}()
	}

	return sub
}

// Observer returns a callback for fsm.WithObserver that publishes every
// committed transition to the hub. One hub can observe several machines;
// Seq then orders changes across all of them.
func (h *Hub[S, E]) Observer() func(from, to S, event E) {
	return func(from, to S, event E) {
		h.publish(Change[S, E]{
			From:  from,
			To:    to,
			Event: event,
			Seq:   h.seq.Add(1),
			At:    time.Now(),
		})
	}
}

func (h *Hub[S, E]) publish(c Change[S, E]) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for sub := range h.subscribers {
		if !sub.send(c) {
			// Explicitly closed subscribers are detached asynchronously
			// to avoid write-lock contention during publishing.
			go h.unsubscribe(sub)
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (h *Hub[S, E]) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close shuts down the hub and closes all subscribers. It is safe to call
// multiple times. After Close, new subscriptions come back already closed
// and published changes go nowhere.
func (h *Hub[S, E]) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	close(h.done)

	for sub := range h.subscribers {
		_ = sub.Close()
	}
	clear(h.subscribers)
	h.mu.Unlock()

	h.cleanupWg.Wait()
	return nil
}

func (h *Hub[S, E]) unsubscribe(sub *subscriber[S, E]) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.subscribers, sub)
	_ = sub.Close()
}

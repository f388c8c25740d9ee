// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// ConnState is the lifecycle state of a stream connection.
type ConnState int

// Stream connection states, in the order a connection moves through them.
const (
	StateOpening ConnState = iota
	StateStreaming
	StateClosed
)

// String returns the name of the state.
func (s ConnState) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateStreaming:
		return "streaming"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("ConnState(%d)", int(s))
	}
}

// DefaultBufferSize is the number of events queued per connection before
// further events for it are dropped.
const DefaultBufferSize = 16

// ErrShutdown is returned by Serve once the broadcaster has been shut down.
var ErrShutdown = errors.New("event broadcaster is shut down")

type subscriber struct {
	id     string
	events chan *Event
}

// Broadcaster owns the open event stream connections and fans published
// events out to them.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[string]*subscriber

	done     chan struct{}
	shutdown sync.Once

	bufferSize int
	logger     *slog.Logger
	connHook   func(connID string, state ConnState)
}

// Option configures a [Broadcaster].
type Option func(*Broadcaster)

// WithLogger sets the logger for the Broadcaster.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Broadcaster) {
		b.logger = logger
	}
}

// WithBufferSize sets the per connection event queue length.
func WithBufferSize(n int) Option {
	return func(b *Broadcaster) {
		if n > 0 {
			b.bufferSize = n
		}
	}
}

// WithConnHook registers fn to observe every connection state transition.
func WithConnHook(fn func(connID string, state ConnState)) Option {
	return func(b *Broadcaster) {
		b.connHook = fn
	}
}

// NewBroadcaster creates a new Broadcaster.
func NewBroadcaster(opts ...Option) *Broadcaster {
	b := &Broadcaster{
		subs:       make(map[string]*subscriber),
		done:       make(chan struct{}),
		bufferSize: DefaultBufferSize,
		logger:     slog.Default(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Serve runs one stream connection on w. It writes the event stream headers
// and the initialize event, then relays published events until ctx is done
// or the broadcaster shuts down.
//
// Cancellation is a normal termination and returns nil. Write failures are
// logged and returned. The connection is unregistered on every return path.
func (b *Broadcaster) Serve(ctx context.Context, w http.ResponseWriter) error {
	select {
	case <-b.done:
		return ErrShutdown
	default:
	}

	connID := uuid.NewString()
	b.transition(connID, StateOpening)

	sub := b.subscribe(connID)
	defer func() {
		b.unsubscribe(connID)
		b.transition(connID, StateClosed)
	}()

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no") // For Nginx proxy
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	if err := b.send(w, rc, Initialize()); err != nil {
		b.logger.ErrorContext(ctx, "failed to send initialize event", "conn_id", connID, "error", err)
		return err
	}
	b.transition(connID, StateStreaming)

	for {
		select {
		case <-ctx.Done():
			b.logger.DebugContext(ctx, "event stream closed by client", "conn_id", connID)
			return nil
		case <-b.done:
			return nil
		case e := <-sub.events:
			if err := b.send(w, rc, e); err != nil {
				b.logger.ErrorContext(ctx, "failed to send event", "conn_id", connID, "event", e.String(), "error", err)
				return err
			}
		}
	}
}

// Publish queues e on every open connection and returns how many accepted it.
// It never blocks; connections whose queue is full miss the event.
func (b *Broadcaster) Publish(e *Event) int {
	return b.PublishFunc(e, nil)
}

// PublishFunc queues e on the open connections for which match reports true.
// A nil match selects every connection.
func (b *Broadcaster) PublishFunc(e *Event, match func(connID string) bool) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for id, sub := range b.subs {
		if match != nil && !match(id) {
			continue
		}
		select {
		case sub.events <- e:
			delivered++
		default:
			b.logger.Warn("dropping event for slow stream", "conn_id", id, "event", e.String())
		}
	}
	return delivered
}

// Count returns the number of open connections.
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Shutdown ends every open connection and refuses new ones. It is safe to
// call more than once.
func (b *Broadcaster) Shutdown() {
	b.shutdown.Do(func() {
		close(b.done)
	})
}

func (b *Broadcaster) subscribe(id string) *subscriber {
	sub := &subscriber{
		id:     id,
		events: make(chan *Event, b.bufferSize),
	}

	b.mu.Lock()
	b.subs[id] = sub
	b.mu.Unlock()

	return sub
}

func (b *Broadcaster) unsubscribe(id string) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}

func (b *Broadcaster) send(w http.ResponseWriter, rc *http.ResponseController, e *Event) error {
	if _, err := e.WriteTo(w); err != nil {
		return err
	}
	if err := rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return fmt.Errorf("failed to flush event: %w", err)
	}
	return nil
}

func (b *Broadcaster) transition(id string, state ConnState) {
	if b.connHook != nil {
		b.connHook(id, state)
	}
}

// Package queue provides a mutex-guarded bounded FIFO queue on top of the
// slab-backed list. It is the synchronization wrapper the core list tells
// callers to bring when they share one across goroutines.
package queue

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/onflow/listor"
	"github.com/onflow/listor/metrics"
)

// Queue is a bounded FIFO queue safe for concurrent use. Pushes beyond the
// size limit are dropped, never ejected.
type Queue[V any] struct {
	mu        sync.RWMutex
	elements  *listor.List[V]
	logger    zerolog.Logger
	collector metrics.Collector
	sizeLimit uint
}

// NewQueue creates a queue holding at most sizeLimit elements, with all
// slots allocated up front.
func NewQueue[V any](sizeLimit uint32, logger zerolog.Logger, collector metrics.Collector) *Queue[V] {
	return &Queue[V]{
		elements:  listor.NewBounded[V](int(sizeLimit)),
		logger:    logger.With().Str("component", "listor-queue").Logger(),
		collector: collector,
		sizeLimit: uint(sizeLimit),
	}
}

// Push appends the value to the back of the queue. The boolean return value
// says whether the push took place; a push is dropped when the queue is
// full.
func (q *Queue[V]) Push(value V) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	_, ok := q.elements.PushBack(value)
	if !ok {
		q.collector.OnKeyPutDrop()
		q.logger.Debug().
			Uint("size_limit", q.sizeLimit).
			Msg("push dropped, queue is full")
		return false
	}
	q.collector.OnKeyPutSuccess(uint32(q.elements.Len()))
	return true
}

// Pop removes and returns the head of the queue. The boolean return value
// says whether there was one, i.e. popping an empty queue returns false.
func (q *Queue[V]) Pop() (V, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	value, ok := q.elements.PopFront()
	if !ok {
		var zero V
		return zero, false
	}
	q.collector.OnKeyRemoved(uint32(q.elements.Len()))
	return value, true
}

// Peek returns the head of the queue without removing it.
func (q *Queue[V]) Peek() (V, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return q.elements.Front()
}

// Size returns the number of queued elements.
func (q *Queue[V]) Size() uint {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return uint(q.elements.Len())
}

// Package cache provides a keyed, bounded cache built on the slab-backed
// list: the list keeps the entries in insertion order and supplies the
// ejection victim, a map keeps the key-to-handle lookup O(1).
package cache

import (
	"github.com/rs/zerolog"

	"github.com/onflow/listor"
	"github.com/onflow/listor/metrics"
)

// EjectionMode selects what Add does when the cache is full.
type EjectionMode string

const (
	// RandomEjection ejects an arbitrary resident entry to make room. The
	// victim comes from Go map iteration order, which is randomized but not
	// uniform.
	RandomEjection = EjectionMode("random-ejection")

	// LRUEjection ejects the entry at the front of the insertion order, the
	// oldest resident one (least recently touched, once Touch is used).
	LRUEjection = EjectionMode("lru-ejection")

	// NoEjection drops the incoming entry instead.
	NoEjection = EjectionMode("no-ejection")
)

// entry is what the backing list stores: the value together with its key, so
// an ejection victim pulled off the list can be deleted from the lookup map.
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a bounded key-value cache. It is not safe for concurrent use;
// callers sharing one across goroutines must provide their own locking, the
// way the queue package does for the list.
type Cache[K comparable, V any] struct {
	logger       zerolog.Logger
	collector    metrics.Collector
	tracer       Tracer[K, V]
	sizeLimit    uint32
	ejectionMode EjectionMode

	// entries keeps resident entries in insertion order; its front is the
	// LRU ejection victim.
	entries *listor.List[entry[K, V]]
	index   map[K]listor.Index
}

// Option configures an optional feature of a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithTracer injects a tracer to be notified of capacity ejections.
func WithTracer[K comparable, V any](t Tracer[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.tracer = t
	}
}

// NewCache creates a cache holding at most sizeLimit entries, with all slots
// allocated up front.
func NewCache[K comparable, V any](
	sizeLimit uint32,
	ejectionMode EjectionMode,
	logger zerolog.Logger,
	collector metrics.Collector,
	opts ...Option[K, V],
) *Cache[K, V] {
	c := &Cache[K, V]{
		logger:       logger.With().Str("component", "listor-cache").Logger(),
		collector:    collector,
		sizeLimit:    sizeLimit,
		ejectionMode: ejectionMode,
		entries:      listor.NewBounded[entry[K, V]](int(sizeLimit)),
		index:        make(map[K]listor.Index, sizeLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Has returns true if an entry with the given key is resident.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Add stores the (key, value) pair. It returns false and leaves the cache
// unchanged when the key is already resident, or when the cache is full and
// ejection is off. When the cache is full and an ejection mode is set, a
// resident entry is ejected to make room.
func (c *Cache[K, V]) Add(key K, value V) bool {
	if _, ok := c.index[key]; ok {
		c.collector.OnKeyPutDeduplicated()
		return false
	}

	if uint32(c.entries.Len()) >= c.sizeLimit {
		if !c.eject() {
			c.collector.OnKeyPutDrop()
			c.logger.Debug().
				Uint32("size_limit", c.sizeLimit).
				Msg("add dropped, cache is full with no ejection")
			return false
		}
	}

	// after a successful ejection the bounded list has a free slot, so this
	// push cannot fail
	idx, ok := c.entries.PushBack(entry[K, V]{key: key, value: value})
	if !ok {
		c.logger.Fatal().Msg("push to cache list failed after capacity check")
		return false
	}
	c.index[key] = idx
	c.collector.OnKeyPutSuccess(uint32(c.entries.Len()))
	return true
}

// Get returns the value stored under key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	idx, ok := c.index[key]
	if !ok {
		c.collector.OnKeyGetFailure()
		var zero V
		return zero, false
	}
	e, ok := c.entries.Get(idx)
	if !ok {
		c.logger.Fatal().Msg("cache index maps key to a dead list handle")
		var zero V
		return zero, false
	}
	c.collector.OnKeyGetSuccess()
	return e.value, true
}

// Adjust applies f to the value stored under key, stores the result and
// returns it. Returns false when the key is not resident.
func (c *Cache[K, V]) Adjust(key K, f func(V) V) (V, bool) {
	idx, ok := c.index[key]
	if !ok {
		c.collector.OnKeyGetFailure()
		var zero V
		return zero, false
	}
	e, _ := c.entries.Adjust(idx, func(e entry[K, V]) entry[K, V] {
		e.value = f(e.value)
		return e
	})
	c.collector.OnKeyGetSuccess()
	return e.value, true
}

// Remove drops the entry stored under key and returns its value.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	idx, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	e, _ := c.entries.Remove(idx)
	delete(c.index, key)
	c.collector.OnKeyRemoved(uint32(c.entries.Len()))
	return e.value, true
}

// Touch moves the entry stored under key to the back of the ejection order,
// so it becomes the last LRU victim. Returns false when the key is not
// resident.
func (c *Cache[K, V]) Touch(key K) bool {
	idx, ok := c.index[key]
	if !ok {
		return false
	}
	return c.entries.MoveToBack(idx)
}

// Head returns the value of the oldest resident entry, the next LRU victim.
func (c *Cache[K, V]) Head() (V, bool) {
	e, ok := c.entries.Front()
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// All returns all resident values in the same order as they were added.
func (c *Cache[K, V]) All() []V {
	entries := c.entries.All()
	values := make([]V, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.value)
	}
	return values
}

// Size returns the number of resident entries.
func (c *Cache[K, V]) Size() uint {
	return uint(c.entries.Len())
}

// Clear drops every resident entry while keeping the allocated slots.
func (c *Cache[K, V]) Clear() {
	c.entries.Clear()
	c.index = make(map[K]listor.Index, c.sizeLimit)
}

// eject makes room for one insertion by removing a resident entry according
// to the ejection mode. Returns false when the mode is NoEjection or there
// is nothing to eject.
func (c *Cache[K, V]) eject() bool {
	switch c.ejectionMode {
	case LRUEjection:
		idx, ok := c.entries.FrontIndex()
		if !ok {
			return false
		}
		return c.ejectAt(idx)
	case RandomEjection:
		for _, idx := range c.index {
			return c.ejectAt(idx)
		}
		return false
	default:
		return false
	}
}

// ejectAt removes the entry at the given list handle, cleans up the lookup
// map and fires the ejection hooks.
func (c *Cache[K, V]) ejectAt(idx listor.Index) bool {
	e, ok := c.entries.Remove(idx)
	if !ok {
		return false
	}
	delete(c.index, e.key)
	c.collector.OnEntityEjectionDueToFullCapacity()
	if c.tracer != nil {
		c.tracer.OnEntityEjectionDueToFullCapacity(e.key, e.value)
	}
	c.logger.Debug().
		Uint32("size_limit", c.sizeLimit).
		Str("ejection_mode", string(c.ejectionMode)).
		Msg("ejected an entry to make room")
	return true
}

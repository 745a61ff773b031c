// Package listor provides a doubly-linked list backed by a contiguous slab
// of slots instead of per-node heap allocations.
//
// The list hands out Index values as stable handles to its elements, keeps
// freed slots on an embedded free stack for O(1) reuse, and performs all
// insertion, removal and splicing in constant time. Handles carry a
// generation, so a handle kept past its element's removal fails instead of
// silently naming the slot's next occupant.
//
// Capacity comes in two modes. Unbounded lists grow their slab geometrically
// (New, NewWithCapacity); bounded lists materialize every slot up front and
// reject insertions beyond the limit (NewBounded).
//
// A List performs no internal synchronization. The cache and queue
// subpackages build keyed and concurrency-safe structures on top of it.
package listor

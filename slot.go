package listor

import "math"

// noSlot is used when a link does not point anywhere, in other words it is an
// equivalent of a nil address.
const noSlot uint32 = math.MaxUint32

// slot is one storage position of the backing array. An occupied slot holds
// an element value and its links to the previous and next occupied slots in
// list order. A free slot reuses the next link as the free-stack link, so the
// free list costs no storage beyond the slots themselves.
type slot[V any] struct {
	value V

	// next links to the next occupied slot in list order, or, while the slot
	// is free, to the next free slot on the stack.
	next uint32
	prev uint32

	// gen counts acquisitions of this slot. A handle is valid only while its
	// generation matches.
	gen      uint32
	occupied bool
}

// acquire claims a slot for the next element: the top of the free stack when
// one is there, otherwise a freshly materialized slot at the end of the store.
// Returns false when the list is bounded and every slot is occupied.
func (l *List[V]) acquire() (uint32, bool) {
	if l.free != noSlot {
		i := l.free
		l.free = l.slots[i].next
		return i, true
	}
	if l.bounded {
		// bounded stores materialize all slots up front, so an empty free
		// stack means the list is full
		return noSlot, false
	}
	l.slots = append(l.slots, slot[V]{gen: 1, next: noSlot, prev: noSlot})
	return uint32(len(l.slots) - 1), true
}

// release returns slot i to the free stack. The caller must have unlinked the
// slot from the occupied chain already; release does not touch head or tail.
func (l *List[V]) release(i uint32) {
	var zero V
	s := &l.slots[i]
	s.value = zero
	s.occupied = false
	s.gen++
	s.prev = noSlot
	s.next = l.free
	l.free = i
}

// lookup resolves a handle to its slot position. It fails when the position
// is out of range, the slot is free, or the handle's generation is stale.
func (l *List[V]) lookup(i Index) (uint32, bool) {
	s := i.slot()
	if uint64(s) >= uint64(len(l.slots)) {
		return noSlot, false
	}
	if !l.slots[s].occupied || l.slots[s].gen != i.gen() {
		return noSlot, false
	}
	return s, true
}

package listor

// Iterator is a lazy cursor over the elements of a List, walking the link
// chain in one direction. Fresh iterators may be created repeatedly through
// Iter and IterRev. Mutating the list while an iterator is live is undefined
// with respect to the iterator's remaining output; as a bounded-damage
// measure the iterator stops early if its cursor lands on a slot that is no
// longer occupied.
type Iterator[V any] struct {
	list *List[V]
	cur  uint32
	last Index
	rev  bool
}

// Iter returns an iterator over the list from front to back.
func (l *List[V]) Iter() *Iterator[V] {
	return &Iterator[V]{list: l, cur: l.head}
}

// IterRev returns an iterator over the list from back to front.
func (l *List[V]) IterRev() *Iterator[V] {
	return &Iterator[V]{list: l, cur: l.tail, rev: true}
}

// Next yields the value under the cursor and advances. Returns false once
// the chain is exhausted.
func (it *Iterator[V]) Next() (V, bool) {
	if it.cur == noSlot || uint64(it.cur) >= uint64(len(it.list.slots)) || !it.list.slots[it.cur].occupied {
		var zero V
		return zero, false
	}
	s := &it.list.slots[it.cur]
	it.last = makeIndex(it.cur, s.gen)
	v := s.value
	if it.rev {
		it.cur = s.prev
	} else {
		it.cur = s.next
	}
	return v, true
}

// Index returns the handle of the element most recently yielded by Next.
// Before the first yield it returns the zero Index, which is never valid.
func (it *Iterator[V]) Index() Index {
	return it.last
}

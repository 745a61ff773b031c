package listor

// List is a doubly-linked list stored in contiguous memory. Elements live in
// a slab of slots; the links between them are slot positions rather than
// pointers, and removed slots are recycled through an embedded free stack, so
// no operation allocates per element. Insertion, removal and splicing are
// O(1); growing the slab in unbounded mode is amortized O(1).
//
// A List is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own synchronization, the way Queue does.
type List[V any] struct {
	slots []slot[V]

	// free is the top of the free stack, threaded through the next links of
	// free slots, or noSlot when no released or pre-materialized slot is
	// waiting for reuse.
	free uint32

	head uint32
	tail uint32
	size int

	// limit caps the slot count when bounded is set. Unbounded lists ignore
	// it and grow through append.
	limit   int
	bounded bool
}

// New creates an empty unbounded list. The slab starts with no storage and
// grows geometrically as elements are pushed.
func New[V any]() *List[V] {
	return &List[V]{
		free: noSlot,
		head: noSlot,
		tail: noSlot,
	}
}

// NewWithCapacity creates an empty unbounded list with backing storage
// reserved for n elements, so the first n insertions trigger no reallocation.
func NewWithCapacity[V any](n int) *List[V] {
	l := New[V]()
	l.slots = make([]slot[V], 0, n)
	return l
}

// NewBounded creates an empty list that holds at most limit elements. All
// limit slots are materialized up front and threaded onto the free stack;
// the list never reallocates, and insertions beyond the limit fail.
func NewBounded[V any](limit int) *List[V] {
	l := &List[V]{
		slots:   make([]slot[V], limit),
		free:    noSlot,
		head:    noSlot,
		tail:    noSlot,
		limit:   limit,
		bounded: true,
	}
	l.threadFree()
	return l
}

// threadFree links every materialized slot onto the free stack in ascending
// slot order, so reuse after construction or Clear starts at slot 0.
func (l *List[V]) threadFree() {
	if len(l.slots) == 0 {
		l.free = noSlot
		return
	}
	for i := range l.slots {
		l.slots[i].prev = noSlot
		l.slots[i].next = uint32(i + 1)
		if l.slots[i].gen == 0 {
			l.slots[i].gen = 1
		}
	}
	l.slots[len(l.slots)-1].next = noSlot
	l.free = 0
}

// Len returns the number of elements currently in the list.
func (l *List[V]) Len() int {
	return l.size
}

// Cap returns the number of elements the list can hold without growing: the
// limit for a bounded list, the reserved backing capacity otherwise.
func (l *List[V]) Cap() int {
	if l.bounded {
		return l.limit
	}
	return cap(l.slots)
}

// Empty returns true if the list holds no elements.
func (l *List[V]) Empty() bool {
	return l.size == 0
}

// PushBack appends a value to the back of the list and returns its handle.
// Returns false only when the list is bounded and full.
func (l *List[V]) PushBack(v V) (Index, bool) {
	i, ok := l.acquire()
	if !ok {
		return 0, false
	}
	s := &l.slots[i]
	s.value = v
	s.occupied = true
	s.prev = l.tail
	s.next = noSlot
	if l.tail != noSlot {
		l.slots[l.tail].next = i
	} else {
		l.head = i
	}
	l.tail = i
	l.size++
	return makeIndex(i, s.gen), true
}

// PushFront prepends a value to the front of the list and returns its handle.
// Returns false only when the list is bounded and full.
func (l *List[V]) PushFront(v V) (Index, bool) {
	i, ok := l.acquire()
	if !ok {
		return 0, false
	}
	s := &l.slots[i]
	s.value = v
	s.occupied = true
	s.next = l.head
	s.prev = noSlot
	if l.head != noSlot {
		l.slots[l.head].prev = i
	} else {
		l.tail = i
	}
	l.head = i
	l.size++
	return makeIndex(i, s.gen), true
}

// InsertAfter splices a value in right after the element named by anchor.
// It fails with ErrInvalidIndex when the anchor does not name a live element,
// and with ErrCapacityExhausted when the list is bounded and full. A failed
// insert leaves the list untouched.
func (l *List[V]) InsertAfter(anchor Index, v V) (Index, error) {
	a, ok := l.lookup(anchor)
	if !ok {
		return 0, ErrInvalidIndex
	}
	i, ok := l.acquire()
	if !ok {
		return 0, ErrCapacityExhausted
	}
	next := l.slots[a].next
	s := &l.slots[i]
	s.value = v
	s.occupied = true
	s.prev = a
	s.next = next
	l.slots[a].next = i
	if next != noSlot {
		l.slots[next].prev = i
	} else {
		l.tail = i
	}
	l.size++
	return makeIndex(i, s.gen), nil
}

// InsertBefore splices a value in right before the element named by anchor.
// Failure modes match InsertAfter.
func (l *List[V]) InsertBefore(anchor Index, v V) (Index, error) {
	a, ok := l.lookup(anchor)
	if !ok {
		return 0, ErrInvalidIndex
	}
	i, ok := l.acquire()
	if !ok {
		return 0, ErrCapacityExhausted
	}
	prev := l.slots[a].prev
	s := &l.slots[i]
	s.value = v
	s.occupied = true
	s.next = a
	s.prev = prev
	l.slots[a].prev = i
	if prev != noSlot {
		l.slots[prev].next = i
	} else {
		l.head = i
	}
	l.size++
	return makeIndex(i, s.gen), nil
}

// Remove takes the element named by i out of the list and returns its value.
// Returns false when i does not name a live element; the list is untouched
// in that case. The slot is pushed onto the free stack for reuse.
func (l *List[V]) Remove(i Index) (V, bool) {
	s, ok := l.lookup(i)
	if !ok {
		var zero V
		return zero, false
	}
	return l.removeAt(s), true
}

// removeAt unsplices the occupied slot s from the chain, releases it and
// returns the extracted value. The caller guarantees s is occupied.
func (l *List[V]) removeAt(s uint32) V {
	l.unlink(s)
	v := l.slots[s].value
	l.release(s)
	l.size--
	return v
}

// unlink performs the pointer surgery that takes slot s out of the occupied
// chain, updating head and tail when s is at a boundary.
func (l *List[V]) unlink(s uint32) {
	prev := l.slots[s].prev
	next := l.slots[s].next
	if prev != noSlot {
		l.slots[prev].next = next
	} else {
		l.head = next
	}
	if next != noSlot {
		l.slots[next].prev = prev
	} else {
		l.tail = prev
	}
}

// PopFront removes and returns the first element. Returns false on an empty
// list.
func (l *List[V]) PopFront() (V, bool) {
	if l.head == noSlot {
		var zero V
		return zero, false
	}
	return l.removeAt(l.head), true
}

// PopBack removes and returns the last element. Returns false on an empty
// list.
func (l *List[V]) PopBack() (V, bool) {
	if l.tail == noSlot {
		var zero V
		return zero, false
	}
	return l.removeAt(l.tail), true
}

// Get returns the value of the element named by i. Returns false when i does
// not name a live element.
func (l *List[V]) Get(i Index) (V, bool) {
	s, ok := l.lookup(i)
	if !ok {
		var zero V
		return zero, false
	}
	return l.slots[s].value, true
}

// Adjust applies f to the value of the element named by i, stores the result
// in place, and returns it. Returns false when i does not name a live
// element. This is the mutation surface; values are not handed out by
// reference because the slab may move on growth.
func (l *List[V]) Adjust(i Index, f func(V) V) (V, bool) {
	s, ok := l.lookup(i)
	if !ok {
		var zero V
		return zero, false
	}
	l.slots[s].value = f(l.slots[s].value)
	return l.slots[s].value, true
}

// Contains returns true if i names a live element.
func (l *List[V]) Contains(i Index) bool {
	_, ok := l.lookup(i)
	return ok
}

// Front returns the value of the first element, or false on an empty list.
func (l *List[V]) Front() (V, bool) {
	if l.head == noSlot {
		var zero V
		return zero, false
	}
	return l.slots[l.head].value, true
}

// Back returns the value of the last element, or false on an empty list.
func (l *List[V]) Back() (V, bool) {
	if l.tail == noSlot {
		var zero V
		return zero, false
	}
	return l.slots[l.tail].value, true
}

// FrontIndex returns the handle of the first element, or false on an empty
// list.
func (l *List[V]) FrontIndex() (Index, bool) {
	if l.head == noSlot {
		return 0, false
	}
	return makeIndex(l.head, l.slots[l.head].gen), true
}

// BackIndex returns the handle of the last element, or false on an empty
// list.
func (l *List[V]) BackIndex() (Index, bool) {
	if l.tail == noSlot {
		return 0, false
	}
	return makeIndex(l.tail, l.slots[l.tail].gen), true
}

// NextVacantIndex returns the handle the next successful insertion will be
// issued. Returns false when the list is bounded and full.
func (l *List[V]) NextVacantIndex() (Index, bool) {
	if l.free != noSlot {
		return makeIndex(l.free, l.slots[l.free].gen), true
	}
	if l.bounded {
		return 0, false
	}
	// the next insertion materializes a fresh slot at the end of the store
	return makeIndex(uint32(len(l.slots)), 1), true
}

// MoveToFront unsplices the element named by i and resplices it as the first
// element. Its handle stays valid. Returns false when i does not name a live
// element.
func (l *List[V]) MoveToFront(i Index) bool {
	s, ok := l.lookup(i)
	if !ok {
		return false
	}
	if s == l.head {
		return true
	}
	l.unlink(s)
	l.slots[s].prev = noSlot
	l.slots[s].next = l.head
	l.slots[l.head].prev = s
	l.head = s
	return true
}

// MoveToBack unsplices the element named by i and resplices it as the last
// element. Its handle stays valid. Returns false when i does not name a live
// element.
func (l *List[V]) MoveToBack(i Index) bool {
	s, ok := l.lookup(i)
	if !ok {
		return false
	}
	if s == l.tail {
		return true
	}
	l.unlink(s)
	l.slots[s].next = noSlot
	l.slots[s].prev = l.tail
	l.slots[l.tail].next = s
	l.tail = s
	return true
}

// All returns the values of all elements in list order.
func (l *List[V]) All() []V {
	all := make([]V, 0, l.size)
	for next := l.head; next != noSlot; next = l.slots[next].next {
		all = append(all, l.slots[next].value)
	}
	return all
}

// Clear removes every element while keeping the backing storage. All
// materialized slots are rethreaded onto the free stack in ascending slot
// order, and every outstanding handle becomes stale.
func (l *List[V]) Clear() {
	var zero V
	for i := range l.slots {
		if l.slots[i].occupied {
			l.slots[i].value = zero
			l.slots[i].occupied = false
			l.slots[i].gen++
		}
	}
	l.threadFree()
	l.head = noSlot
	l.tail = noSlot
	l.size = 0
}

package listor

// Index is the handle naming an element of a List. It is issued by the
// insertion operations and consumed by access and removal operations.
//
// An Index packs the slot position of the element together with the slot's
// generation at the time the element was inserted. When a slot is released
// its generation moves on, so a retained Index becomes invalid rather than
// silently aliasing whatever element is stored in the slot next. The
// generation wraps around after 2^32 reuses of a single slot, at which point
// a handle that old could alias again; callers holding handles across that
// many reuses of one slot are on their own.
//
// The zero Index is never issued and is never valid.
type Index uint64

// makeIndex packs a slot position and its current generation into a handle.
func makeIndex(slot uint32, gen uint32) Index {
	return Index(uint64(gen)<<32 | uint64(slot))
}

// slot returns the slot position half of the handle.
func (i Index) slot() uint32 {
	return uint32(i)
}

// gen returns the generation half of the handle.
func (i Index) gen() uint32 {
	return uint32(i >> 32)
}

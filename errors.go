package listor

import "errors"

var (
	// ErrInvalidIndex is returned when a handle does not name a live element:
	// the slot position was never materialized, the slot is currently free,
	// or the handle's generation is stale because the slot has been reused.
	ErrInvalidIndex = errors.New("index does not name a live element")

	// ErrCapacityExhausted is returned when a bounded list has no free slot
	// left for an insertion.
	ErrCapacityExhausted = errors.New("capacity exhausted")
)

// Package metrics defines the instrumentation surface of the cache and queue
// components and provides a Prometheus-backed and a no-op implementation.
package metrics

// Collector receives the cache and queue events worth counting. Every method
// must be safe for concurrent use and cheap enough to sit on the hot path.
type Collector interface {
	// OnKeyPutSuccess is called whenever a new (key, value) pair is
	// successfully added, with the resident size after the put.
	OnKeyPutSuccess(size uint32)

	// OnKeyPutDrop is called whenever a new (key, value) pair is dropped
	// because the structure is full and not ejecting.
	OnKeyPutDrop()

	// OnKeyPutDeduplicated tracks the total number of unsuccessful writes
	// caused by adding a duplicate key.
	OnKeyPutDeduplicated()

	// OnKeyGetSuccess tracks the total number of successful read queries.
	OnKeyGetSuccess()

	// OnKeyGetFailure tracks the total number of unsuccessful read queries.
	OnKeyGetFailure()

	// OnKeyRemoved is called whenever a key is removed, with the resident
	// size after the removal.
	OnKeyRemoved(size uint32)

	// OnEntityEjectionDueToFullCapacity is called whenever adding a new
	// (key, value) pair results in ejection of a resident pair.
	OnEntityEjectionDueToFullCapacity()
}

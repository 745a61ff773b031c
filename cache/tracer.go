package cache

// Tracer is notified of entries leaving the cache without the caller asking
// for it. Callers that maintain secondary indexes over cached values hook in
// here to keep them consistent.
type Tracer[K comparable, V any] interface {
	// OnEntityEjectionDueToFullCapacity is called whenever adding a new
	// (key, value) pair ejects a resident pair. The tracer runs inside the
	// Add call and must not call back into the cache.
	OnEntityEjectionDueToFullCapacity(key K, value V)
}

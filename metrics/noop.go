package metrics

// NoopCollector discards every event. It is the collector to pass when no
// instrumentation is wanted.
type NoopCollector struct{}

var _ Collector = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) OnKeyPutSuccess(uint32)             {}
func (nc *NoopCollector) OnKeyPutDrop()                      {}
func (nc *NoopCollector) OnKeyPutDeduplicated()              {}
func (nc *NoopCollector) OnKeyGetSuccess()                   {}
func (nc *NoopCollector) OnKeyGetFailure()                   {}
func (nc *NoopCollector) OnKeyRemoved(uint32)                {}
func (nc *NoopCollector) OnEntityEjectionDueToFullCapacity() {}

package unittest

import (
	"go.uber.org/atomic"

	"github.com/onflow/listor/metrics"
)

// CountingCollector counts metric events so tests can assert on them. Safe
// for concurrent use.
type CountingCollector struct {
	PutSuccess   atomic.Uint64
	PutDrop      atomic.Uint64
	PutDedup     atomic.Uint64
	GetSuccess   atomic.Uint64
	GetFailure   atomic.Uint64
	Removed      atomic.Uint64
	Ejected      atomic.Uint64
	ResidentSize atomic.Uint32
}

var _ metrics.Collector = (*CountingCollector)(nil)

func NewCountingCollector() *CountingCollector {
	return &CountingCollector{}
}

func (c *CountingCollector) OnKeyPutSuccess(size uint32) {
	c.PutSuccess.Inc()
	c.ResidentSize.Store(size)
}

func (c *CountingCollector) OnKeyPutDrop() {
	c.PutDrop.Inc()
}

func (c *CountingCollector) OnKeyPutDeduplicated() {
	c.PutDedup.Inc()
}

func (c *CountingCollector) OnKeyGetSuccess() {
	c.GetSuccess.Inc()
}

func (c *CountingCollector) OnKeyGetFailure() {
	c.GetFailure.Inc()
}

func (c *CountingCollector) OnKeyRemoved(size uint32) {
	c.Removed.Inc()
	c.ResidentSize.Store(size)
}

func (c *CountingCollector) OnEntityEjectionDueToFullCapacity() {
	c.Ejected.Inc()
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystem = "listor"

// PromCollector reports cache and queue events to Prometheus.
type PromCollector struct {
	sizeGauge prometheus.Gauge

	countKeyGetSuccess prometheus.Counter
	countKeyGetFailure prometheus.Counter

	countKeyPutSuccess      prometheus.Counter
	countKeyPutDrop         prometheus.Counter
	countKeyPutDeduplicated prometheus.Counter

	countKeyRemoved prometheus.Counter

	countEjectionDueToFullCapacity prometheus.Counter
}

var _ Collector = (*PromCollector)(nil)

// NewCollector creates a PromCollector for the structure identified by
// namespace and name and registers its metrics with the registerer. It
// panics if a collector for the same (namespace, name) is already
// registered.
func NewCollector(namespace string, name string, registerer prometheus.Registerer) *PromCollector {

	sizeGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name + "_" + "size",
		Help:      "number of resident entries",
	})

	countKeyGetSuccess := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name + "_" + "successful_read_count_total",
		Help:      "total number of successful read queries",
	})

	countKeyGetFailure := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name + "_" + "unsuccessful_read_count_total",
		Help:      "total number of unsuccessful read queries",
	})

	countKeyPutSuccess := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name + "_" + "successful_write_count_total",
		Help:      "total number of successful write queries",
	})

	countKeyPutDrop := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name + "_" + "dropped_write_count_total",
		Help:      "total number of writes dropped due to full capacity with no ejection",
	})

	countKeyPutDeduplicated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name + "_" + "deduplicated_write_count_total",
		Help:      "total number of writes rejected as duplicate keys",
	})

	countKeyRemoved := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name + "_" + "removed_count_total",
		Help:      "total number of removed entries",
	})

	countEjectionDueToFullCapacity := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name + "_" + "full_capacity_entity_ejection_total",
		Help:      "total number of entries ejected due to full capacity",
	})

	registerer.MustRegister(
		sizeGauge,
		countKeyGetSuccess,
		countKeyGetFailure,
		countKeyPutSuccess,
		countKeyPutDrop,
		countKeyPutDeduplicated,
		countKeyRemoved,
		countEjectionDueToFullCapacity)

	return &PromCollector{
		sizeGauge:                      sizeGauge,
		countKeyGetSuccess:             countKeyGetSuccess,
		countKeyGetFailure:             countKeyGetFailure,
		countKeyPutSuccess:             countKeyPutSuccess,
		countKeyPutDrop:                countKeyPutDrop,
		countKeyPutDeduplicated:        countKeyPutDeduplicated,
		countKeyRemoved:                countKeyRemoved,
		countEjectionDueToFullCapacity: countEjectionDueToFullCapacity,
	}
}

func (c *PromCollector) OnKeyPutSuccess(size uint32) {
	c.countKeyPutSuccess.Inc()
	c.sizeGauge.Set(float64(size))
}

func (c *PromCollector) OnKeyPutDrop() {
	c.countKeyPutDrop.Inc()
}

func (c *PromCollector) OnKeyPutDeduplicated() {
	c.countKeyPutDeduplicated.Inc()
}

func (c *PromCollector) OnKeyGetSuccess() {
	c.countKeyGetSuccess.Inc()
}

func (c *PromCollector) OnKeyGetFailure() {
	c.countKeyGetFailure.Inc()
}

func (c *PromCollector) OnKeyRemoved(size uint32) {
	c.countKeyRemoved.Inc()
	c.sizeGauge.Set(float64(size))
}

func (c *PromCollector) OnEntityEjectionDueToFullCapacity() {
	c.countEjectionDueToFullCapacity.Inc()
}

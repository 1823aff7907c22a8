package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemNodePool = "node_pool"

// PoolCollector implements PoolMetrics on top of prometheus counters and a
// free-list size gauge.
type PoolCollector struct {
	countNodeAllocated prometheus.Counter
	countNodeRecycled  prometheus.Counter
	countNodePooled    prometheus.Counter
	countNodeDiscarded prometheus.Counter

	gaugeFreeListSize prometheus.Gauge
}

var _ PoolMetrics = (*PoolCollector)(nil)

// NewPoolCollector registers and returns a collector for one container.
// containerName distinguishes containers sharing a registerer and must be a
// valid prometheus label value.
func NewPoolCollector(nameSpace string, containerName string, registrar prometheus.Registerer) *PoolCollector {
	countNodeAllocated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   nameSpace,
		Subsystem:   subsystemNodePool,
		Name:        "nodes_allocated_total",
		Help:        "total number of freshly allocated nodes",
		ConstLabels: prometheus.Labels{"container": containerName},
	})

	countNodeRecycled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   nameSpace,
		Subsystem:   subsystemNodePool,
		Name:        "nodes_recycled_total",
		Help:        "total number of nodes reused from the free list",
		ConstLabels: prometheus.Labels{"container": containerName},
	})

	countNodePooled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   nameSpace,
		Subsystem:   subsystemNodePool,
		Name:        "nodes_pooled_total",
		Help:        "total number of removed nodes parked on the free list",
		ConstLabels: prometheus.Labels{"container": containerName},
	})

	countNodeDiscarded := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   nameSpace,
		Subsystem:   subsystemNodePool,
		Name:        "nodes_discarded_total",
		Help:        "total number of removed nodes dropped because the free list was full or disabled",
		ConstLabels: prometheus.Labels{"container": containerName},
	})

	gaugeFreeListSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   nameSpace,
		Subsystem:   subsystemNodePool,
		Name:        "free_list_size",
		Help:        "current number of nodes held on the free list",
		ConstLabels: prometheus.Labels{"container": containerName},
	})

	registrar.MustRegister(
		countNodeAllocated,
		countNodeRecycled,
		countNodePooled,
		countNodeDiscarded,
		gaugeFreeListSize)

	return &PoolCollector{
		countNodeAllocated: countNodeAllocated,
		countNodeRecycled:  countNodeRecycled,
		countNodePooled:    countNodePooled,
		countNodeDiscarded: countNodeDiscarded,
		gaugeFreeListSize:  gaugeFreeListSize,
	}
}

func (c *PoolCollector) OnNodeAllocated() {
	c.countNodeAllocated.Inc()
}

func (c *PoolCollector) OnNodeRecycled() {
	c.countNodeRecycled.Inc()
	c.gaugeFreeListSize.Dec()
}

func (c *PoolCollector) OnNodePooled(poolSize uint) {
	c.countNodePooled.Inc()
	c.gaugeFreeListSize.Set(float64(poolSize))
}

func (c *PoolCollector) OnNodeDiscarded() {
	c.countNodeDiscarded.Inc()
}

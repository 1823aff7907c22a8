// Package metrics defines the node-lifecycle metrics consumed by the pooled
// containers, together with a no-op collector and a prometheus-backed one.
package metrics

// PoolMetrics tracks the node lifecycle of a pooled container. With pooling
// enabled, recycles plus fresh allocations account for every node that ever
// entered the live chain.
type PoolMetrics interface {
	// OnNodeAllocated is called whenever a container mints a fresh node
	// because its free list is empty or disabled.
	OnNodeAllocated()

	// OnNodeRecycled is called whenever a container reuses a node from its
	// free list instead of allocating.
	OnNodeRecycled()

	// OnNodePooled is called whenever a removed node is parked on the free
	// list for later reuse. poolSize is the free-list size after parking.
	OnNodePooled(poolSize uint)

	// OnNodeDiscarded is called whenever a removed node is dropped because
	// the free list is full or disabled.
	OnNodeDiscarded()
}

// NoopCollector discards all metrics. It is the default collector of every
// container.
type NoopCollector struct{}

func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

func (nc *NoopCollector) OnNodeAllocated()           {}
func (nc *NoopCollector) OnNodeRecycled()            {}
func (nc *NoopCollector) OnNodePooled(poolSize uint) {}
func (nc *NoopCollector) OnNodeDiscarded()           {}

package list

// The free list is a linear chain threaded through the next pointers of
// decommissioned nodes, regardless of whether the list itself is circular.
// Pooled nodes carry no owner so that a stale handle fails ownership
// validation instead of corrupting the chain.

// acquire returns a ready-to-link node carrying x and owned by l: the free
// list's head when one is available, a fresh allocation otherwise.
func (l *List[T]) acquire(x T) *Node[T] {
	if l.poolSize > 0 {
		n := l.poolHead
		l.poolHead = n.next
		if l.poolHead == nil {
			l.poolTail = nil
		}
		l.poolSize--
		n.next = nil
		n.value = x
		n.list = l
		l.collector.OnNodeRecycled()
		return n
	}
	l.collector.OnNodeAllocated()
	return &Node[T]{value: x, list: l}
}

// release reads out the node's value and either parks the node at the free
// list's tail (links, value and owner cleared first) or, when the free list
// is full or disabled, leaves it unreferenced for collection.
func (l *List[T]) release(n *Node[T]) T {
	value := n.value
	var zero T
	n.value = zero
	n.next = nil
	n.prev = nil
	n.list = nil
	if l.poolSize < l.reservedCapacity {
		if l.poolTail == nil {
			l.poolHead = n
		} else {
			l.poolTail.next = n
		}
		l.poolTail = n
		l.poolSize++
		l.collector.OnNodePooled(uint(l.poolSize))
	} else {
		l.collector.OnNodeDiscarded()
	}
	return value
}

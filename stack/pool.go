package stack

// acquire returns a ready-to-link node carrying x: the free list's head when
// one is available, a fresh allocation otherwise.
func (s *LinkedStack[T]) acquire(x T) *node[T] {
	if s.poolSize > 0 {
		n := s.poolHead
		s.poolHead = n.next
		if s.poolHead == nil {
			s.poolTail = nil
		}
		s.poolSize--
		n.next = nil
		n.value = x
		s.collector.OnNodeRecycled()
		return n
	}
	s.collector.OnNodeAllocated()
	return &node[T]{value: x}
}

// release reads out the node's value and either parks the node at the free
// list's tail (links and value cleared first) or, when the free list is full
// or disabled, leaves it unreferenced for collection.
func (s *LinkedStack[T]) release(n *node[T]) T {
	value := n.value
	if s.poolSize < s.reservedCapacity {
		var zero T
		n.value = zero
		n.next = nil
		if s.poolTail == nil {
			s.poolHead = n
		} else {
			s.poolTail.next = n
		}
		s.poolTail = n
		s.poolSize++
		s.collector.OnNodePooled(uint(s.poolSize))
	} else {
		s.collector.OnNodeDiscarded()
	}
	return value
}

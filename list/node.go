package list

// Node is a doubly-linked chain element. Nodes are minted by their list and
// stay valid handles for O(1) insertion and removal until unlinked.
//
// The back-pointer to the owning list is non-owning and used only to validate
// that a node supplied to an API call belongs to the list it is used against.
type Node[T any] struct {
	value T
	next  *Node[T]
	prev  *Node[T]
	list  *List[T]
}

// Value returns the element stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue overwrites the element stored in the node.
func (n *Node[T]) SetValue(x T) {
	n.value = x
}

// Next returns the forward neighbor: nil past the tail of an open list, the
// head past the tail of a circular one.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the backward neighbor: nil before the head of an open list,
// the tail before the head of a circular one.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Package list implements a doubly-linked list, open or circular, built from
// nodes recycled through a bounded free list.
//
// Node handles returned by the list stay valid until unlinked and give O(1)
// insertion and removal anywhere in the chain. Sorting, merging and reversal
// operate by relinking or overwriting the existing nodes; the element
// sequence is never rebuilt from scratch.
//
// The list is not concurrency safe.
package list

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/onflow/herolist"
	"github.com/onflow/herolist/metrics"
)

// List is a pooled doubly-linked list. In circular form the tail links
// forward to the head and the head links backward to the tail; in open form
// both end links are nil.
type List[T any] struct {
	head     *Node[T]
	tail     *Node[T]
	size     int
	circular bool

	maxSize int

	// free list of decommissioned nodes, linear chain bounded by
	// reservedCapacity
	poolHead         *Node[T]
	poolTail         *Node[T]
	poolSize         int
	reservedCapacity int

	equals    herolist.EqualsFunc[T]
	logger    zerolog.Logger
	collector metrics.PoolMetrics

	reuseIterator bool
	shared        *Iterator[T]
}

// New creates an empty open list. By default the list is unbounded, pooling
// is disabled, element equality is reflect.DeepEqual, logging is off and
// metrics are discarded; each of these is overridden by the corresponding
// Option.
func New[T any](opts ...Option[T]) (*List[T], error) {
	l := &List[T]{
		maxSize:   maxInt,
		equals:    func(a, b T) bool { return reflect.DeepEqual(a, b) },
		logger:    zerolog.Nop(),
		collector: metrics.NewNoopCollector(),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("could not apply list option: %w", err)
		}
	}
	l.logger = l.logger.With().Str("component", "linked-list").Logger()
	return l, nil
}

// Size returns the number of elements currently held.
func (l *List[T]) Size() int {
	return l.size
}

// IsCircular reports whether the list is in circular form.
func (l *List[T]) IsCircular() bool {
	return l.circular
}

// Head returns the first node, or nil when the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node, or nil when the list is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// Close puts the list in circular form, linking tail.next to head and
// head.prev to tail. Closing an already-circular list is a no-op.
func (l *List[T]) Close() {
	if l.circular {
		return
	}
	l.circular = true
	if l.size > 0 {
		l.tail.next = l.head
		l.head.prev = l.tail
	}
}

// Open puts the list in open form, clearing the wrap links. Opening an
// already-open list is a no-op.
func (l *List[T]) Open() {
	if !l.circular {
		return
	}
	l.circular = false
	if l.size > 0 {
		l.tail.next = nil
		l.head.prev = nil
	}
}

// Append inserts x after the tail in O(1).
// It returns ErrCapacityExceeded when the list is at its maximum size.
func (l *List[T]) Append(x T) error {
	if l.size >= l.maxSize {
		return fmt.Errorf("append to list of %d elements, limit %d: %w",
			l.size, l.maxSize, herolist.ErrCapacityExceeded)
	}
	n := l.acquire(x)
	if l.size == 0 {
		l.head, l.tail = n, n
		if l.circular {
			n.next, n.prev = n, n
		}
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
		if l.circular {
			n.next = l.head
			l.head.prev = n
		}
	}
	l.size++
	return nil
}

// Prepend inserts x before the head in O(1).
// It returns ErrCapacityExceeded when the list is at its maximum size.
func (l *List[T]) Prepend(x T) error {
	if l.size >= l.maxSize {
		return fmt.Errorf("prepend to list of %d elements, limit %d: %w",
			l.size, l.maxSize, herolist.ErrCapacityExceeded)
	}
	n := l.acquire(x)
	if l.size == 0 {
		l.head, l.tail = n, n
		if l.circular {
			n.next, n.prev = n, n
		}
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
		if l.circular {
			n.prev = l.tail
			l.tail.next = n
		}
	}
	l.size++
	return nil
}

// InsertAfter inserts x right after ref in O(1).
// It returns ErrForeignNode when ref is nil or owned by another list, and
// ErrCapacityExceeded when the list is at its maximum size.
func (l *List[T]) InsertAfter(ref *Node[T], x T) error {
	if !l.owns(ref) {
		return fmt.Errorf("insert after: %w", herolist.ErrForeignNode)
	}
	if l.size >= l.maxSize {
		return fmt.Errorf("insert into list of %d elements, limit %d: %w",
			l.size, l.maxSize, herolist.ErrCapacityExceeded)
	}
	n := l.acquire(x)
	n.prev = ref
	n.next = ref.next
	if ref.next != nil {
		ref.next.prev = n
	}
	ref.next = n
	if ref == l.tail {
		l.tail = n
	}
	l.size++
	return nil
}

// InsertBefore inserts x right before ref in O(1).
// It returns ErrForeignNode when ref is nil or owned by another list, and
// ErrCapacityExceeded when the list is at its maximum size.
func (l *List[T]) InsertBefore(ref *Node[T], x T) error {
	if !l.owns(ref) {
		return fmt.Errorf("insert before: %w", herolist.ErrForeignNode)
	}
	if l.size >= l.maxSize {
		return fmt.Errorf("insert into list of %d elements, limit %d: %w",
			l.size, l.maxSize, herolist.ErrCapacityExceeded)
	}
	n := l.acquire(x)
	n.next = ref
	n.prev = ref.prev
	if ref.prev != nil {
		ref.prev.next = n
	}
	ref.prev = n
	if ref == l.head {
		l.head = n
	}
	l.size++
	return nil
}

// Unlink removes n from the list in O(1), re-threading the endpoints and
// wrap links as needed, and releases its node. It returns n's former next
// node: nil when n was the sole element or the tail of an open list.
// It returns ErrEmptyContainer on an empty list and ErrForeignNode when n is
// nil or owned by another list.
func (l *List[T]) Unlink(n *Node[T]) (*Node[T], error) {
	if l.size == 0 {
		return nil, fmt.Errorf("unlink from empty list: %w", herolist.ErrEmptyContainer)
	}
	if !l.owns(n) {
		return nil, fmt.Errorf("unlink: %w", herolist.ErrForeignNode)
	}
	next := l.detach(n)
	l.release(n)
	return next, nil
}

// RemoveHead removes the first element in O(1) and returns its value.
// It returns ErrEmptyContainer when the list is empty.
func (l *List[T]) RemoveHead() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("remove head of empty list: %w", herolist.ErrEmptyContainer)
	}
	n := l.head
	l.detach(n)
	return l.release(n), nil
}

// RemoveTail removes the last element in O(1) and returns its value.
// It returns ErrEmptyContainer when the list is empty.
func (l *List[T]) RemoveTail() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("remove tail of empty list: %w", herolist.ErrEmptyContainer)
	}
	n := l.tail
	l.detach(n)
	return l.release(n), nil
}

// ShiftUp rotates the list forward by one position: the head becomes the new
// tail. Only the endpoint links are touched, O(1).
func (l *List[T]) ShiftUp() {
	if l.size < 2 {
		return
	}
	if l.circular {
		// wrap links already connect the endpoints
		l.head = l.head.next
		l.tail = l.tail.next
		return
	}
	n := l.head
	l.head = n.next
	l.head.prev = nil
	n.next = nil
	n.prev = l.tail
	l.tail.next = n
	l.tail = n
}

// PopDown rotates the list backward by one position: the tail becomes the
// new head. Only the endpoint links are touched, O(1).
func (l *List[T]) PopDown() {
	if l.size < 2 {
		return
	}
	if l.circular {
		l.head = l.head.prev
		l.tail = l.tail.prev
		return
	}
	n := l.tail
	l.tail = n.prev
	l.tail.next = nil
	n.prev = nil
	n.next = l.head
	l.head.prev = n
	l.head = n
}

// owns reports whether n is a live node minted by this list.
func (l *List[T]) owns(n *Node[T]) bool {
	return n != nil && n.list == l
}

// detach performs the pointer surgery removing n from the live chain and
// decrements size. It returns n's former next node. The caller is
// responsible for releasing n.
func (l *List[T]) detach(n *Node[T]) *Node[T] {
	next := n.next
	if l.size == 1 {
		l.head, l.tail = nil, nil
		l.size = 0
		return nil
	}
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	if n == l.head {
		l.head = next
	}
	if n == l.tail {
		l.tail = n.prev
	}
	l.size--
	return next
}

// String renders the size, the circularity flag and the elements in natural
// order. The format is diagnostic output, not a durable encoding.
func (l *List[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "List(size=%d, circular=%t)[", l.size, l.circular)
	n := l.head
	for i := 0; i < l.size; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
		n = n.next
	}
	b.WriteByte(']')
	return b.String()
}

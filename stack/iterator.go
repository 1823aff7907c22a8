package stack

import (
	"fmt"

	"github.com/onflow/herolist"
)

// Iterator walks the stack from top to bottom. The sequence is lazy, finite
// and one-shot unless Reset is called.
//
// The iterator holds raw references into the live chain: any structural
// mutation through the stack's own API while an iterator is outstanding
// invalidates its cursor. The only sanctioned mutation during iteration is
// the iterator's Remove, which keeps the cursor consistent.
type Iterator[T any] struct {
	stack *LinkedStack[T]
	next  *node[T]
	curr  *node[T]
	prev  *node[T]
}

// Iterator returns a cursor positioned before the top element. With
// WithIteratorReuse configured, the same iterator object is handed back on
// every call, reset instead of reallocated; nested iteration is then
// unsupported.
func (s *LinkedStack[T]) Iterator() *Iterator[T] {
	if s.reuseIterator {
		if s.shared == nil {
			s.shared = &Iterator[T]{stack: s}
		}
		s.shared.Reset()
		return s.shared
	}
	it := &Iterator[T]{stack: s}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the top of the stack.
func (it *Iterator[T]) Reset() {
	it.next = it.stack.head
	it.curr = nil
	it.prev = nil
}

// Next yields the next element in top-to-bottom order, reporting false once
// the sequence is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.next == nil {
		var zero T
		return zero, false
	}
	if it.curr != nil {
		it.prev = it.curr
	}
	it.curr = it.next
	it.next = it.curr.next
	return it.curr.value, true
}

// Remove splices the last-yielded element out of the stack and releases its
// node, updating the stack on the caller's behalf. It returns ErrForeignNode
// when no element has been yielded yet or the last one was already removed.
func (it *Iterator[T]) Remove() error {
	if it.curr == nil {
		return fmt.Errorf("iterator has no current element: %w", herolist.ErrForeignNode)
	}
	if it.prev == nil {
		it.stack.head = it.curr.next
	} else {
		it.prev.next = it.curr.next
	}
	it.stack.size--
	it.stack.release(it.curr)
	it.curr = nil
	return nil
}

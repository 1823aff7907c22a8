package list

import (
	"fmt"

	"github.com/onflow/herolist"
)

// Iterator walks the list from head to tail. It counts exactly size steps
// rather than testing for a nil terminator, so the same cursor is correct for
// open and circular lists. The sequence is lazy, finite and one-shot unless
// Reset is called.
//
// The iterator holds raw references into the live chain: any structural
// mutation through the list's own API while an iterator is outstanding
// invalidates its cursor. The only sanctioned mutation during iteration is
// the iterator's Remove, which keeps the cursor consistent.
type Iterator[T any] struct {
	list      *List[T]
	next      *Node[T]
	curr      *Node[T]
	remaining int
}

// Iterator returns a cursor positioned before the head element. With
// WithIteratorReuse configured, the same iterator object is handed back on
// every call, reset instead of reallocated; nested iteration is then
// unsupported.
func (l *List[T]) Iterator() *Iterator[T] {
	if l.reuseIterator {
		if l.shared == nil {
			l.shared = &Iterator[T]{list: l}
		}
		l.shared.Reset()
		return l.shared
	}
	it := &Iterator[T]{list: l}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the head of the list.
func (it *Iterator[T]) Reset() {
	it.next = it.list.head
	it.curr = nil
	it.remaining = it.list.size
}

// Next yields the next element in head-to-tail order, reporting false after
// size elements regardless of wrap-around.
func (it *Iterator[T]) Next() (T, bool) {
	if it.remaining == 0 || it.next == nil {
		var zero T
		return zero, false
	}
	it.curr = it.next
	it.next = it.curr.next
	it.remaining--
	return it.curr.value, true
}

// Node returns the last-yielded node, or nil before the first Next and after
// a Remove.
func (it *Iterator[T]) Node() *Node[T] {
	return it.curr
}

// Remove unlinks the last-yielded element from the list and releases its
// node, updating the list on the caller's behalf. It returns ErrForeignNode
// when no element has been yielded yet or the last one was already removed.
func (it *Iterator[T]) Remove() error {
	if it.curr == nil {
		return fmt.Errorf("iterator has no current element: %w", herolist.ErrForeignNode)
	}
	it.list.detach(it.curr)
	it.list.release(it.curr)
	it.curr = nil
	return nil
}

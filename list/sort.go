package list

import (
	"fmt"

	"github.com/onflow/herolist"
)

// Sort reorders the nodes in place by relinking; element values are never
// copied. A circular list is temporarily opened and re-closed around the
// sort.
//
// The default algorithm is a bottom-up merge sort: O(n log n) and stable, the
// tie-break keeps the left-run element first whenever the comparison reports
// greater-or-equal. Setting useInsertionSort selects an O(n^2) insertion sort
// instead, which wins on nearly-sorted input.
//
// When compare is nil, every element must provide the Comparable capability;
// otherwise Sort fails with ErrMissingCapability before reordering anything.
func (l *List[T]) Sort(compare herolist.CompareFunc[T], useInsertionSort bool) error {
	cmp := compare
	if cmp == nil {
		n := l.head
		for i := 0; i < l.size; i++ {
			if _, ok := any(n.value).(herolist.Comparable[T]); !ok {
				return fmt.Errorf("element at position %d has no ordering capability: %w",
					i, herolist.ErrMissingCapability)
			}
			n = n.next
		}
		cmp = func(a, b T) int { return any(a).(herolist.Comparable[T]).Compare(b) }
	}
	if l.size < 2 {
		return nil
	}
	wasCircular := l.circular
	l.Open()
	if useInsertionSort {
		l.insertionSort(cmp)
	} else {
		l.mergeSort(cmp)
	}
	if wasCircular {
		l.Close()
	}
	l.logger.Debug().
		Int("size", l.size).
		Bool("insertion_sort", useInsertionSort).
		Msg("list sorted")
	return nil
}

// mergeSort relinks the chain with a bottom-up merge sort over the next
// pointers, then rebuilds the prev links and the tail in one pass. The list
// must be open and hold at least two elements.
func (l *List[T]) mergeSort(cmp herolist.CompareFunc[T]) {
	for width := 1; width < l.size; width *= 2 {
		var newHead, newTail *Node[T]
		curr := l.head
		for curr != nil {
			left := curr
			right := severRun(left, width)
			curr = severRun(right, width)
			head, tail := mergeRuns(left, right, cmp)
			if newTail == nil {
				newHead = head
			} else {
				newTail.next = head
			}
			newTail = tail
		}
		l.head = newHead
	}
	l.relinkBackward()
}

// severRun walks at most width nodes from n, cuts the chain there and
// returns the remainder's head (nil when the chain ends within the run).
func severRun[T any](n *Node[T], width int) *Node[T] {
	for i := 1; n != nil && i < width; i++ {
		n = n.next
	}
	if n == nil {
		return nil
	}
	rest := n.next
	n.next = nil
	return rest
}

// mergeRuns merges two nil-terminated runs into one, returning its head and
// tail. The left element wins whenever the right one compares
// greater-or-equal, which preserves input order among equal keys.
func mergeRuns[T any](left, right *Node[T], cmp herolist.CompareFunc[T]) (*Node[T], *Node[T]) {
	var head, tail *Node[T]
	take := func(n *Node[T]) {
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	for left != nil && right != nil {
		if cmp(right.value, left.value) >= 0 {
			n := left
			left = left.next
			take(n)
		} else {
			n := right
			right = right.next
			take(n)
		}
	}
	for left != nil {
		n := left
		left = left.next
		take(n)
	}
	for right != nil {
		n := right
		right = right.next
		take(n)
	}
	tail.next = nil
	return head, tail
}

// insertionSort relinks each out-of-order node before the first strictly
// greater node of the sorted prefix, keeping equal keys in input order. The
// list must be open and hold at least two elements.
func (l *List[T]) insertionSort(cmp herolist.CompareFunc[T]) {
	sortedTail := l.head
	for sortedTail.next != nil {
		curr := sortedTail.next
		if cmp(curr.value, sortedTail.value) >= 0 {
			sortedTail = curr
			continue
		}
		// unlink curr from behind the sorted prefix
		sortedTail.next = curr.next
		if curr.next != nil {
			curr.next.prev = sortedTail
		}
		// the prefix's last element is strictly greater, so the walk
		// terminates within the prefix
		pos := l.head
		for cmp(curr.value, pos.value) >= 0 {
			pos = pos.next
		}
		curr.prev = pos.prev
		curr.next = pos
		if pos.prev != nil {
			pos.prev.next = curr
		} else {
			l.head = curr
		}
		pos.prev = curr
	}
	l.tail = sortedTail
}

// relinkBackward rebuilds prev links and the tail from a forward-only chain.
func (l *List[T]) relinkBackward() {
	l.head.prev = nil
	n := l.head
	for n.next != nil {
		n.next.prev = n
		n = n.next
	}
	l.tail = n
}

package list

import (
	"fmt"

	"github.com/onflow/herolist"
)

// Merge destructively appends other's entire node chain to this list's tail:
// the nodes migrate by relinking, values are not copied, and every migrated
// node's back-reference is reassigned to this list. The donor is left empty
// and must not be used afterwards.
// It returns ErrForeignNode when other is nil or this list itself, and
// ErrCapacityExceeded when the combined size exceeds the maximum size.
func (l *List[T]) Merge(other *List[T]) error {
	if other == nil || other == l {
		return fmt.Errorf("merge requires a distinct donor list: %w", herolist.ErrForeignNode)
	}
	if l.size+other.size > l.maxSize {
		return fmt.Errorf("merging %d and %d elements, limit %d: %w",
			l.size, other.size, l.maxSize, herolist.ErrCapacityExceeded)
	}
	if other.size > 0 {
		wasCircular := l.circular
		l.Open()
		other.Open()
		for n := other.head; n != nil; n = n.next {
			n.list = l
		}
		if l.size == 0 {
			l.head = other.head
		} else {
			l.tail.next = other.head
			other.head.prev = l.tail
		}
		l.tail = other.tail
		l.size += other.size
		if wasCircular {
			l.Close()
		}
	}
	other.head, other.tail = nil, nil
	other.size = 0
	other.poolHead, other.poolTail = nil, nil
	other.poolSize = 0
	l.logger.Debug().Int("size", l.size).Msg("merged donor list")
	return nil
}

// Concat builds and returns a new list holding this list's values followed by
// other's, leaving both inputs untouched. The result inherits this list's
// configuration and circularity.
// It returns ErrForeignNode when other is nil and ErrCapacityExceeded when
// the combined size exceeds this list's maximum size.
func (l *List[T]) Concat(other *List[T]) (*List[T], error) {
	if other == nil {
		return nil, fmt.Errorf("concat requires a list: %w", herolist.ErrForeignNode)
	}
	if l.size+other.size > l.maxSize {
		return nil, fmt.Errorf("concatenating %d and %d elements, limit %d: %w",
			l.size, other.size, l.maxSize, herolist.ErrCapacityExceeded)
	}
	out := l.emptyCopy()
	appendValues := func(src *List[T]) {
		n := src.head
		for i := 0; i < src.size; i++ {
			out.link(out.acquire(n.value))
			n = n.next
		}
	}
	appendValues(l)
	appendValues(other)
	if l.circular {
		out.Close()
	}
	return out, nil
}

// Reverse inverts the element order in place by swapping values between
// symmetric position pairs, walking from both ends inward. No nodes are
// relinked.
func (l *List[T]) Reverse() {
	left, right := l.head, l.tail
	for i := 0; i < l.size/2; i++ {
		left.value, right.value = right.value, left.value
		left = left.next
		right = right.prev
	}
}

// Shuffle permutes the element values (node identities stay in place) with a
// Fisher-Yates pass over the head-to-tail order. Supplying explicit uniform
// [0,1) values makes the permutation deterministic; the sequence must hold at
// least size-1 entries or the shuffle fails with ErrInsufficientEntropy.
// Without supplied values the shuffle draws its own randomness.
func (l *List[T]) Shuffle(randoms ...float64) error {
	if l.size < 2 {
		return nil
	}
	entropy, err := herolist.NewEntropy(l.size, randoms)
	if err != nil {
		return fmt.Errorf("cannot shuffle list: %w", err)
	}
	nodes := make([]*Node[T], 0, l.size)
	n := l.head
	for i := 0; i < l.size; i++ {
		nodes = append(nodes, n)
		n = n.next
	}
	for span := l.size; span >= 2; span-- {
		j, err := entropy.Index(span)
		if err != nil {
			return fmt.Errorf("cannot shuffle list: %w", err)
		}
		nodes[span-1].value, nodes[j].value = nodes[j].value, nodes[span-1].value
	}
	l.logger.Debug().Int("size", l.size).Msg("list shuffled")
	return nil
}

// Clone returns a deep-structural duplicate preserving element order,
// configuration and circularity. With byAssignment set, element values are
// copied as-is. Otherwise each new value is produced by copier, or, when
// copier is nil, by the element's own Cloneable capability; an element
// lacking it fails the clone with ErrMissingCapability.
func (l *List[T]) Clone(byAssignment bool, copier herolist.CloneFunc[T]) (*List[T], error) {
	out := l.emptyCopy()
	n := l.head
	for i := 0; i < l.size; i++ {
		value := n.value
		if !byAssignment {
			if copier != nil {
				value = copier(value)
			} else {
				cloneable, ok := any(value).(herolist.Cloneable[T])
				if !ok {
					return nil, fmt.Errorf("element at position %d: %w", i, herolist.ErrMissingCapability)
				}
				value = cloneable.Clone()
			}
		}
		out.link(out.acquire(value))
		n = n.next
	}
	if l.circular {
		out.Close()
	}
	return out, nil
}

// Clear resets the list to empty, keeping its circularity flag. When purge is
// set or pooling is enabled, every surviving node is released individually so
// the free list can reuse it; otherwise the whole chain is dropped for
// collection at once.
func (l *List[T]) Clear(purge bool) {
	if purge || l.reservedCapacity > 0 {
		n := l.head
		for i, steps := 0, l.size; i < steps; i++ {
			next := n.next
			l.release(n)
			n = next
		}
	} else if l.circular && l.size > 0 {
		// sever the cycle so the dropped chain is collectible
		l.tail.next = nil
		l.head.prev = nil
	}
	l.head, l.tail = nil, nil
	l.size = 0
	l.logger.Debug().Bool("purge", purge).Msg("list cleared")
}

// Fill replaces the list's content with n copies of x.
// It returns ErrOutOfRange for negative n and ErrCapacityExceeded when n
// exceeds the maximum size.
func (l *List[T]) Fill(n int, x T) error {
	return l.Assign(n, func(int) T { return x })
}

// Assign replaces the list's content with n elements produced by factory,
// where factory(i) becomes the element at position i from the head.
// It returns ErrOutOfRange for negative n and ErrCapacityExceeded when n
// exceeds the maximum size.
func (l *List[T]) Assign(n int, factory herolist.Factory[T]) error {
	if n < 0 {
		return fmt.Errorf("cannot assign %d elements: %w", n, herolist.ErrOutOfRange)
	}
	if n > l.maxSize {
		return fmt.Errorf("assigning %d elements, limit %d: %w",
			n, l.maxSize, herolist.ErrCapacityExceeded)
	}
	wasCircular := l.circular
	l.Open()
	l.Clear(false)
	for i := 0; i < n; i++ {
		l.link(l.acquire(factory(i)))
	}
	if wasCircular {
		l.Close()
	}
	return nil
}

// ToSlice snapshots the elements in head-to-tail order.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	n := l.head
	for i := 0; i < l.size; i++ {
		out = append(out, n.value)
		n = n.next
	}
	return out
}

// emptyCopy returns a fresh open list sharing this list's configuration.
func (l *List[T]) emptyCopy() *List[T] {
	return &List[T]{
		maxSize:          l.maxSize,
		reservedCapacity: l.reservedCapacity,
		equals:           l.equals,
		logger:           l.logger,
		collector:        l.collector,
		reuseIterator:    l.reuseIterator,
	}
}

// link appends an already-acquired node at the tail of an open list.
func (l *List[T]) link(n *Node[T]) {
	if l.size == 0 {
		l.head, l.tail = n, n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

package list

import (
	"fmt"

	"github.com/onflow/herolist"
)

// NodeOf returns the first node whose value equals x, scanning forward from
// the optional start node (default: the head), or nil when no node matches.
// A circular list is searched for exactly one full loop.
// It returns ErrForeignNode when a start node is supplied that is nil or
// owned by another list.
func (l *List[T]) NodeOf(x T, from ...*Node[T]) (*Node[T], error) {
	start := l.head
	if len(from) > 0 {
		if !l.owns(from[0]) {
			return nil, fmt.Errorf("search start: %w", herolist.ErrForeignNode)
		}
		start = from[0]
	}
	n := start
	for i := 0; i < l.size && n != nil; i++ {
		if l.equals(n.value, x) {
			return n, nil
		}
		n = n.next
	}
	return nil, nil
}

// LastNodeOf returns the first node whose value equals x scanning backward
// from the optional start node (default: the tail), or nil when no node
// matches. A circular list is searched for exactly one full loop.
// It returns ErrForeignNode when a start node is supplied that is nil or
// owned by another list.
func (l *List[T]) LastNodeOf(x T, from ...*Node[T]) (*Node[T], error) {
	start := l.tail
	if len(from) > 0 {
		if !l.owns(from[0]) {
			return nil, fmt.Errorf("search start: %w", herolist.ErrForeignNode)
		}
		start = from[0]
	}
	n := start
	for i := 0; i < l.size && n != nil; i++ {
		if l.equals(n.value, x) {
			return n, nil
		}
		n = n.prev
	}
	return nil, nil
}

// Contains reports whether any element equals x.
func (l *List[T]) Contains(x T) bool {
	n, _ := l.NodeOf(x)
	return n != nil
}

// Remove splices out and releases every element equal to x, scanning from the
// head. It reports whether anything was removed.
func (l *List[T]) Remove(x T) bool {
	removed := false
	n := l.head
	for i, steps := 0, l.size; i < steps && n != nil; i++ {
		next := n.next
		if l.equals(n.value, x) {
			l.detach(n)
			l.release(n)
			removed = true
		}
		n = next
	}
	return removed
}

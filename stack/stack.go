// Package stack implements a LIFO container built from singly-linked nodes
// recycled through a bounded free list.
//
// Beyond push/pop, the stack supports positional access (index 0 is the
// bottom, size-1 the top), cyclic rotation of the topmost elements, in-place
// shuffling and structural cloning. All algorithms relink or overwrite the
// existing nodes; the element sequence is never rebuilt from scratch.
//
// The stack is not concurrency safe.
package stack

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/onflow/herolist"
	"github.com/onflow/herolist/metrics"
)

// node is a singly-linked chain element. A node lives on exactly one of the
// live chain and the free list at any instant.
type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedStack is a pooled LIFO container. The head of the chain is the top of
// the stack.
type LinkedStack[T any] struct {
	head *node[T]
	size int

	maxSize int

	// free list of decommissioned nodes, linear chain bounded by
	// reservedCapacity
	poolHead         *node[T]
	poolTail         *node[T]
	poolSize         int
	reservedCapacity int

	equals    herolist.EqualsFunc[T]
	logger    zerolog.Logger
	collector metrics.PoolMetrics

	reuseIterator bool
	shared        *Iterator[T]
}

// New creates an empty stack. By default the stack is unbounded, pooling is
// disabled, element equality is reflect.DeepEqual, logging is off and metrics
// are discarded; each of these is overridden by the corresponding Option.
func New[T any](opts ...Option[T]) (*LinkedStack[T], error) {
	s := &LinkedStack[T]{
		maxSize:   maxInt,
		equals:    func(a, b T) bool { return reflect.DeepEqual(a, b) },
		logger:    zerolog.Nop(),
		collector: metrics.NewNoopCollector(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("could not apply stack option: %w", err)
		}
	}
	s.logger = s.logger.With().Str("component", "linked-stack").Logger()
	return s, nil
}

// Size returns the number of elements currently held.
func (s *LinkedStack[T]) Size() int {
	return s.size
}

// Push places x on top of the stack.
// It returns ErrCapacityExceeded when the stack is at its maximum size.
func (s *LinkedStack[T]) Push(x T) error {
	if s.size >= s.maxSize {
		return fmt.Errorf("push onto stack of %d elements, limit %d: %w",
			s.size, s.maxSize, herolist.ErrCapacityExceeded)
	}
	n := s.acquire(x)
	n.next = s.head
	s.head = n
	s.size++
	return nil
}

// Pop removes and returns the top element.
// It returns ErrEmptyContainer when the stack is empty.
func (s *LinkedStack[T]) Pop() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, fmt.Errorf("pop from empty stack: %w", herolist.ErrEmptyContainer)
	}
	n := s.head
	s.head = n.next
	s.size--
	return s.release(n), nil
}

// Top returns the top element without removing it.
// It returns ErrEmptyContainer when the stack is empty.
func (s *LinkedStack[T]) Top() (T, error) {
	if s.size == 0 {
		var zero T
		return zero, fmt.Errorf("top of empty stack: %w", herolist.ErrEmptyContainer)
	}
	return s.head.value, nil
}

// Dup pushes a second copy of the top element.
// It returns ErrEmptyContainer on an empty stack and ErrCapacityExceeded when
// the stack is at its maximum size.
func (s *LinkedStack[T]) Dup() error {
	top, err := s.Top()
	if err != nil {
		return err
	}
	return s.Push(top)
}

// Exchange swaps the values of the two topmost elements in place, without
// relinking their nodes.
// It returns ErrEmptyContainer when the stack holds fewer than two elements.
func (s *LinkedStack[T]) Exchange() error {
	if s.size < 2 {
		return fmt.Errorf("exchange needs two elements, stack holds %d: %w",
			s.size, herolist.ErrEmptyContainer)
	}
	s.head.value, s.head.next.value = s.head.next.value, s.head.value
	return nil
}

// Contains reports whether any element equals x.
func (s *LinkedStack[T]) Contains(x T) bool {
	for n := s.head; n != nil; n = n.next {
		if s.equals(n.value, x) {
			return true
		}
	}
	return false
}

// Remove splices out and releases every element equal to x, scanning from the
// top. It reports whether anything was removed.
func (s *LinkedStack[T]) Remove(x T) bool {
	removed := false
	for s.head != nil && s.equals(s.head.value, x) {
		n := s.head
		s.head = n.next
		s.size--
		s.release(n)
		removed = true
	}
	if s.head == nil {
		return removed
	}
	for prev := s.head; prev.next != nil; {
		if s.equals(prev.next.value, x) {
			n := prev.next
			prev.next = n.next
			s.size--
			s.release(n)
			removed = true
		} else {
			prev = prev.next
		}
	}
	return removed
}

// Clear resets the stack to empty. When purge is set or pooling is enabled,
// every surviving node is released individually so the free list can reuse
// it; otherwise the whole chain is dropped for collection at once.
func (s *LinkedStack[T]) Clear(purge bool) {
	if purge || s.reservedCapacity > 0 {
		for n := s.head; n != nil; {
			next := n.next
			s.release(n)
			n = next
		}
	}
	s.head = nil
	s.size = 0
	s.logger.Debug().Bool("purge", purge).Msg("stack cleared")
}

// Fill replaces the stack's content with n copies of x.
// It returns ErrOutOfRange for negative n and ErrCapacityExceeded when n
// exceeds the maximum size.
func (s *LinkedStack[T]) Fill(n int, x T) error {
	return s.Assign(n, func(int) T { return x })
}

// Assign replaces the stack's content with n elements produced by factory,
// where factory(i) becomes the element at position i (bottom = 0).
// It returns ErrOutOfRange for negative n and ErrCapacityExceeded when n
// exceeds the maximum size.
func (s *LinkedStack[T]) Assign(n int, factory herolist.Factory[T]) error {
	if n < 0 {
		return fmt.Errorf("cannot assign %d elements: %w", n, herolist.ErrOutOfRange)
	}
	if n > s.maxSize {
		return fmt.Errorf("assigning %d elements, limit %d: %w",
			n, s.maxSize, herolist.ErrCapacityExceeded)
	}
	s.Clear(false)
	for i := 0; i < n; i++ {
		fresh := s.acquire(factory(i))
		fresh.next = s.head
		s.head = fresh
		s.size++
	}
	return nil
}

// Clone returns a deep-structural duplicate preserving stack order and
// configuration. With byAssignment set, element values are copied as-is.
// Otherwise each new value is produced by copier, or, when copier is nil, by
// the element's own Cloneable capability; an element lacking it fails the
// clone with ErrMissingCapability.
func (s *LinkedStack[T]) Clone(byAssignment bool, copier herolist.CloneFunc[T]) (*LinkedStack[T], error) {
	out := &LinkedStack[T]{
		maxSize:          s.maxSize,
		reservedCapacity: s.reservedCapacity,
		equals:           s.equals,
		logger:           s.logger,
		collector:        s.collector,
		reuseIterator:    s.reuseIterator,
	}
	var tail *node[T]
	for n, i := s.head, 0; n != nil; n, i = n.next, i+1 {
		value := n.value
		if !byAssignment {
			if copier != nil {
				value = copier(value)
			} else {
				cloneable, ok := any(value).(herolist.Cloneable[T])
				if !ok {
					return nil, fmt.Errorf("element at depth %d: %w", i, herolist.ErrMissingCapability)
				}
				value = cloneable.Clone()
			}
		}
		dup := out.acquire(value)
		if tail == nil {
			out.head = dup
		} else {
			tail.next = dup
		}
		tail = dup
		out.size++
	}
	return out, nil
}

// ToSlice snapshots the elements in top-to-bottom order.
func (s *LinkedStack[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// String renders the size and the elements in top-to-bottom order. The format
// is diagnostic output, not a durable encoding.
func (s *LinkedStack[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "LinkedStack(size=%d)[", s.size)
	for n := s.head; n != nil; n = n.next {
		if n != s.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", n.value)
	}
	b.WriteByte(']')
	return b.String()
}

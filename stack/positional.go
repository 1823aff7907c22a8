package stack

import (
	"fmt"

	"github.com/onflow/herolist"
)

// Positional access counts from the bottom of the stack: index 0 is the
// element pushed first among those still held, index size-1 is the top.
// Reaching position i therefore walks size-1-i links from the head.

// nodeAt returns the node at position i.
func (s *LinkedStack[T]) nodeAt(i int) (*node[T], error) {
	if s.size == 0 {
		return nil, fmt.Errorf("positional access on empty stack: %w", herolist.ErrEmptyContainer)
	}
	if i < 0 || i >= s.size {
		return nil, fmt.Errorf("index %d outside [0, %d): %w", i, s.size, herolist.ErrOutOfRange)
	}
	n := s.head
	for steps := s.size - 1 - i; steps > 0; steps-- {
		n = n.next
	}
	return n, nil
}

// Get returns the element at position i.
func (s *LinkedStack[T]) Get(i int) (T, error) {
	n, err := s.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// Set overwrites the element at position i with x.
func (s *LinkedStack[T]) Set(i int, x T) error {
	n, err := s.nodeAt(i)
	if err != nil {
		return err
	}
	n.value = x
	return nil
}

// Swap exchanges the values at positions i and j.
// It returns ErrOutOfRange when the positions coincide or either is out of
// range.
func (s *LinkedStack[T]) Swap(i, j int) error {
	ni, nj, err := s.nodePair(i, j)
	if err != nil {
		return err
	}
	ni.value, nj.value = nj.value, ni.value
	return nil
}

// Copy overwrites the value at position j with the value at position i.
// It returns ErrOutOfRange when the positions coincide or either is out of
// range.
func (s *LinkedStack[T]) Copy(i, j int) error {
	ni, nj, err := s.nodePair(i, j)
	if err != nil {
		return err
	}
	nj.value = ni.value
	return nil
}

func (s *LinkedStack[T]) nodePair(i, j int) (*node[T], *node[T], error) {
	if i == j {
		return nil, nil, fmt.Errorf("positions must differ, both are %d: %w", i, herolist.ErrOutOfRange)
	}
	ni, err := s.nodeAt(i)
	if err != nil {
		return nil, nil, err
	}
	nj, err := s.nodeAt(j)
	if err != nil {
		return nil, nil, err
	}
	return ni, nj, nil
}

// RotRight cyclically rotates the top n elements by relinking their nodes:
// the n-th element from the top becomes the new top, every other rotated
// element moves one position down. No values are copied.
// It returns ErrOutOfRange when n is not in [1, size].
func (s *LinkedStack[T]) RotRight(n int) error {
	if err := s.checkRotationSpan(n); err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	prev := s.head
	for i := 0; i < n-2; i++ {
		prev = prev.next
	}
	target := prev.next
	prev.next = target.next
	target.next = s.head
	s.head = target
	return nil
}

// RotLeft cyclically rotates the top n elements the other way: the top
// element moves to the n-th position from the top. For equal n, RotLeft is
// the inverse of RotRight.
// It returns ErrOutOfRange when n is not in [1, size].
func (s *LinkedStack[T]) RotLeft(n int) error {
	if err := s.checkRotationSpan(n); err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	top := s.head
	s.head = top.next
	prev := s.head
	for i := 0; i < n-2; i++ {
		prev = prev.next
	}
	top.next = prev.next
	prev.next = top
	return nil
}

func (s *LinkedStack[T]) checkRotationSpan(n int) error {
	if n < 1 || n > s.size {
		return fmt.Errorf("rotation span %d outside [1, %d]: %w", n, s.size, herolist.ErrOutOfRange)
	}
	return nil
}

// Shuffle permutes the element values (node identities stay in place) with a
// Fisher-Yates pass over the top-to-bottom order. Supplying explicit uniform
// [0,1) values makes the permutation deterministic; the sequence must hold at
// least size-1 entries or the shuffle fails with ErrInsufficientEntropy.
// Without supplied values the shuffle draws its own randomness.
func (s *LinkedStack[T]) Shuffle(randoms ...float64) error {
	if s.size < 2 {
		return nil
	}
	entropy, err := herolist.NewEntropy(s.size, randoms)
	if err != nil {
		return fmt.Errorf("cannot shuffle stack: %w", err)
	}
	nodes := make([]*node[T], 0, s.size)
	for n := s.head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}
	for span := s.size; span >= 2; span-- {
		j, err := entropy.Index(span)
		if err != nil {
			return fmt.Errorf("cannot shuffle stack: %w", err)
		}
		nodes[span-1].value, nodes[j].value = nodes[j].value, nodes[span-1].value
	}
	s.logger.Debug().Int("size", s.size).Msg("stack shuffled")
	return nil
}

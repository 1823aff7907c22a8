// Package herolist provides the contracts shared by the pooled linear
// containers of this module: the LinkedStack in package stack and the
// doubly-linked List in package list.
//
// Both containers recycle their nodes through a bounded free list instead of
// allocating on every insertion, and both mutate sequences by relinking
// existing nodes rather than rebuilding them. The containers are not
// concurrency safe.
//
// Algorithms that need an element capability (ordering for sort, cloning for
// deep copy) accept an explicit function value. When the function is nil, the
// element type itself must provide the capability by implementing Comparable
// or Cloneable; otherwise the operation fails with ErrMissingCapability.
package herolist

import (
	"fmt"

	"github.com/onflow/herolist/utils/rand"
)

// Comparable is the ordering capability an element type may implement.
// Compare returns a negative value when the receiver orders before other,
// zero when they are equivalent, and a positive value otherwise.
type Comparable[T any] interface {
	Compare(other T) int
}

// Cloneable is the cloning capability an element type may implement.
type Cloneable[T any] interface {
	Clone() T
}

// CompareFunc orders two elements; semantics match Comparable.Compare.
type CompareFunc[T any] func(a, b T) int

// CloneFunc produces a deep copy of an element.
type CloneFunc[T any] func(x T) T

// EqualsFunc reports whether two elements hold the same value.
type EqualsFunc[T any] func(a, b T) bool

// Factory produces the element stored at position i during bulk assignment.
type Factory[T any] func(i int) T

// Entropy yields the swap indices of a Fisher-Yates pass over n elements.
//
// When the caller supplies an explicit sequence of uniform [0,1) values, one
// value is consumed per swap step and the index for a span of s remaining
// elements is floor(r*s), which makes the permutation fully deterministic.
// Without a supplied sequence, indices are drawn from crypto/rand via
// utils/rand.
type Entropy struct {
	randoms []float64
	next    int
}

// NewEntropy validates a caller-supplied random sequence against the number
// of elements to permute. A pass over n elements performs n-1 swaps, so the
// sequence must hold at least n-1 values.
//
// It returns ErrInsufficientEntropy when the supplied sequence is too short.
func NewEntropy(n int, randoms []float64) (*Entropy, error) {
	if len(randoms) > 0 && len(randoms) < n-1 {
		return nil, fmt.Errorf("shuffling %d elements consumes %d random values, got %d: %w",
			n, n-1, len(randoms), ErrInsufficientEntropy)
	}
	return &Entropy{randoms: randoms}, nil
}

// Index returns a uniform index in [0, span).
func (e *Entropy) Index(span int) (int, error) {
	if len(e.randoms) == 0 {
		j, err := rand.Uintn(uint(span))
		if err != nil {
			return 0, fmt.Errorf("could not draw random index: %w", err)
		}
		return int(j), nil
	}
	r := e.randoms[e.next]
	e.next++
	j := int(r * float64(span))
	if j >= span {
		j = span - 1
	}
	return j, nil
}

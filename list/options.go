package list

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/onflow/herolist"
	"github.com/onflow/herolist/metrics"
)

// theoretical default capacity: the largest platform int
const maxInt = math.MaxInt

// Option configures a list at construction time.
type Option[T any] func(*List[T]) error

// Circular constructs the list in circular form: the tail links forward to
// the head and the head links backward to the tail. The form can be toggled
// later with Close and Open.
func Circular[T any]() Option[T] {
	return func(l *List[T]) error {
		l.circular = true
		return nil
	}
}

// WithMaxSize bounds the list to limit elements. Insertions beyond the limit
// fail with ErrCapacityExceeded.
func WithMaxSize[T any](limit int) Option[T] {
	return func(l *List[T]) error {
		if limit < 1 {
			return fmt.Errorf("maximum size must be positive, got %d", limit)
		}
		l.maxSize = limit
		return nil
	}
}

// WithReservedCapacity enables pooling: up to capacity removed nodes are kept
// on a free list and reused by later insertions. Pooling only changes
// allocation counts, never observable list semantics.
func WithReservedCapacity[T any](capacity int) Option[T] {
	return func(l *List[T]) error {
		if capacity < 0 {
			return fmt.Errorf("reserved capacity must be non-negative, got %d", capacity)
		}
		l.reservedCapacity = capacity
		return nil
	}
}

// WithEquals overrides the element equality used by Contains, Remove and the
// searches. The default is reflect.DeepEqual.
func WithEquals[T any](equals herolist.EqualsFunc[T]) Option[T] {
	return func(l *List[T]) error {
		if equals == nil {
			return fmt.Errorf("nil is not a valid equality function")
		}
		l.equals = equals
		return nil
	}
}

// WithLogger attaches a logger; structural operations log at Debug level.
func WithLogger[T any](logger zerolog.Logger) Option[T] {
	return func(l *List[T]) error {
		l.logger = logger
		return nil
	}
}

// WithMetrics attaches a node-lifecycle metrics collector.
func WithMetrics[T any](collector metrics.PoolMetrics) Option[T] {
	return func(l *List[T]) error {
		if collector == nil {
			return fmt.Errorf("nil is not a valid metrics collector")
		}
		l.collector = collector
		return nil
	}
}

// WithIteratorReuse makes Iterator hand back one shared iterator object,
// reset on every call, instead of allocating a new one. A reused iterator is
// single-flight: starting a nested iteration while one is active corrupts
// both cursors.
func WithIteratorReuse[T any]() Option[T] {
	return func(l *List[T]) error {
		l.reuseIterator = true
		return nil
	}
}

package herolist

import (
	"errors"
)

// All container failures are precondition violations raised synchronously at
// the offending call. A failed call leaves the container unchanged; the
// container never retries or partially completes.
var (
	// ErrCapacityExceeded indicates an insertion would grow the container
	// beyond its configured maximum size.
	ErrCapacityExceeded = errors.New("insertion would exceed maximum container size")

	// ErrEmptyContainer indicates an operation that requires elements was
	// called on a container holding too few of them.
	ErrEmptyContainer = errors.New("operation requires more elements than the container holds")

	// ErrOutOfRange indicates a positional argument outside the container's
	// valid bounds.
	ErrOutOfRange = errors.New("position is out of range")

	// ErrForeignNode indicates a node (or container) argument that is nil or
	// does not belong to the container it is used against.
	ErrForeignNode = errors.New("node is nil or belongs to a different container")

	// ErrMissingCapability indicates sort or clone was invoked without a
	// comparator/copier while an element lacks the corresponding capability.
	ErrMissingCapability = errors.New("element lacks required capability and no substitute function was supplied")

	// ErrInsufficientEntropy indicates a caller-supplied random sequence is
	// shorter than the shuffle requires.
	ErrInsufficientEntropy = errors.New("supplied random sequence is too short")
)

// Package rand wraps `crypto/rand` to extract secure entropy in the shapes
// the containers need: bounded uniform integers and an in-place Fisher-Yates
// shuffle. It should be used instead of `math/rand` so that shuffles without
// caller-supplied randomness are still uniformly distributed.
//
// Functions in this package return an error only if the underlying system
// source fails to read new randoms, which is an irrecoverable exception.
package rand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Uint64 returns a random uint64, or an error if the system entropy source
// fails.
func Uint64() (uint64, error) {
	// allocate per call to keep the package free of shared state
	buffer := make([]byte, 8)
	if _, err := rand.Read(buffer); err != nil {
		return 0, fmt.Errorf("crypto/rand read failed: %w", err)
	}
	return binary.LittleEndian.Uint64(buffer), nil
}

// Uint64n returns a random uint64 strictly less than `n`.
// `n` has to be a strictly positive integer.
func Uint64n(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("n should be strictly positive, got %d", n)
	}
	max := n - 1

	// byte and bit sizes of max
	size := 0
	for tmp := max; tmp != 0; tmp >>= 8 {
		size++
	}
	mask := uint64(0)
	for max&mask != max {
		mask = (mask << 1) | 1
	}

	buffer := make([]byte, 8)

	// Reducing a 64-bit random modulo n would skew the distribution.
	// Instead, sample within the bit size of max and reject values above it;
	// each loop iteration succeeds with probability > 1/2.
	random := n
	for random > max {
		if _, err := rand.Read(buffer[:size]); err != nil {
			return 0, fmt.Errorf("crypto/rand read failed: %w", err)
		}
		random = binary.LittleEndian.Uint64(buffer)
		random &= mask
	}
	return random, nil
}

// Uintn returns a random uint strictly less than `n`.
// `n` has to be a strictly positive integer.
func Uintn(n uint) (uint, error) {
	r, err := Uint64n(uint64(n))
	return uint(r), err
}

// Shuffle permutes a data structure of `n` elements in place based on the
// provided `swap` function. It implements Fisher-Yates with crypto/rand as
// the source of randoms, using O(1) space and O(n) time.
func Shuffle(n uint, swap func(i, j uint)) error {
	for i := uint(0); i < n; i++ {
		j, err := Uintn(n - i)
		if err != nil {
			return err
		}
		swap(i, i+j)
	}
	return nil
}

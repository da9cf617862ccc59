// Package oddsieve implements a contiguous, odds-only Sieve of Eratosthenes
// bounded to 32-bit limits. It is the base-prime generator every other
// component in this module builds on.
package oddsieve

import (
	"errors"
	"fmt"
	"math"
)

// MaxLimit is the largest limit the sieve accepts. Above this the caller
// should have chosen the segmented or Lucy_Hedgehog path instead.
const MaxLimit uint32 = 1<<31 - 2

// ErrLimitOverflow is returned when a requested limit exceeds MaxLimit.
var ErrLimitOverflow = errors.New("oddsieve: sieve limit overflow")

// Sieve returns every prime p <= limit, in increasing order, as a base-prime
// list. limit < 2 yields an empty slice; limit == 2 yields []uint32{2}.
func Sieve(limit uint32) ([]uint32, error) {
	if limit > MaxLimit {
		return nil, fmt.Errorf("%w: limit %d exceeds %d", ErrLimitOverflow, limit, MaxLimit)
	}
	if limit < 2 {
		return nil, nil
	}

	// composite[i] tracks the odd value 2i+1; composite[0] (value 1) is
	// never consulted.
	m := int((limit-1)/2 + 1)
	composite := make([]bool, m)

	root := int(math.Sqrt(float64(limit)))
	for i := 1; 2*i+1 <= root; i++ {
		if composite[i] {
			continue
		}
		p := 2*i + 1
		for j := (p*p - 1) / 2; j < m; j += p {
			composite[j] = true
		}
	}

	primes := make([]uint32, 0, estimateCount(limit))
	primes = append(primes, 2)
	for i := 1; i < m; i++ {
		if !composite[i] {
			primes = append(primes, uint32(2*i+1))
		}
	}
	return primes, nil
}

// estimateCount gives a rough pre-allocation size via the prime number
// theorem so Sieve avoids repeated slice growth on large limits.
func estimateCount(limit uint32) int {
	if limit < 10 {
		return 4
	}
	lf := float64(limit)
	return int(1.3 * lf / math.Log(lf))
}

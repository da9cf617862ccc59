// Package segsieve implements a bounded-memory, odds-only segmented sieve
// over an arbitrary 64-bit window [lo, hi], given a base-prime list that
// covers floor(sqrt(hi)).
package segsieve

import (
	"fmt"

	"github.com/jplarose/eratosthenes-sieve/internal/intmath"
)

// Primes returns every prime p with lo <= p <= hi, in ascending order.
//
// base must contain every prime <= floor(sqrt(hi)) as a prefix of the true
// prime sequence; callers running with debug assertions enabled should
// verify this before calling, since a short base list silently yields a
// result set with composites included.
func Primes(lo, hi uint64, base []uint32) []uint64 {
	if lo > hi {
		return nil
	}

	var out []uint64
	if lo <= 2 && 2 <= hi {
		out = append(out, 2)
	}

	loOdd := firstOdd(lo)
	if loOdd > hi {
		return out
	}

	size := (hi-loOdd)/2 + 1
	marked := make([]bool, size)

	for _, p32 := range base {
		p := uint64(p32)
		if p == 2 {
			continue
		}
		if p*p > hi {
			break
		}
		ceilMultiple := ((loOdd + p - 1) / p) * p
		first := p * p
		if ceilMultiple > first {
			first = ceilMultiple
		}
		if first%2 == 0 {
			first += p
		}
		startIdx := (first - loOdd) / 2
		for idx := startIdx; idx < size; idx += p {
			marked[idx] = true
		}
	}

	for i := uint64(0); i < size; i++ {
		if marked[i] {
			continue
		}
		v := loOdd + 2*i
		if v >= 3 {
			out = append(out, v)
		}
	}
	return out
}

// firstOdd returns the smallest odd value >= max(lo, 3).
func firstOdd(lo uint64) uint64 {
	if lo <= 2 {
		return 3
	}
	if lo%2 == 1 {
		return lo
	}
	return lo + 1
}

// CheckCoverage is a debug assertion helper: it reports an error if base
// does not reach floor(sqrt(hi)), which is the precondition Primes silently
// relies on.
func CheckCoverage(hi uint64, base []uint32) error {
	if len(base) == 0 {
		if hi < 4 {
			return nil
		}
		return fmt.Errorf("segsieve: empty base primes insufficient for hi=%d", hi)
	}
	need := intmath.ISqrt(hi)
	last := uint64(base[len(base)-1])
	if last < need && need > 1 {
		return fmt.Errorf("segsieve: base primes reach %d, need >= %d for hi=%d", last, need, hi)
	}
	return nil
}

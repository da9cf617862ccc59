package primes

import (
	"fmt"

	"github.com/jplarose/eratosthenes-sieve/internal/bounds"
	"github.com/jplarose/eratosthenes-sieve/internal/diag"
	"github.com/jplarose/eratosthenes-sieve/internal/intmath"
	"github.com/jplarose/eratosthenes-sieve/internal/lucy"
	"github.com/jplarose/eratosthenes-sieve/internal/oddsieve"
	"github.com/jplarose/eratosthenes-sieve/internal/segsieve"
)

// binarySearchIterationCap bounds the count-and-zoom binary search. Safe for
// all n <= 10^10 given U(k)-L(k) is O(k*ln(k)); raising it is harmless,
// lowering it is not (see spec's Open Questions).
const binarySearchIterationCap = 50

// NthPrimeDefault computes the n-th prime (0-based) using DefaultOptions.
func NthPrimeDefault(n int64) (uint64, error) {
	return NthPrime(n, DefaultOptions())
}

// NthPrime computes the n-th prime (0-based, so n=0 yields 2) for the given
// options. n is accepted as a signed integer solely so that a negative
// index is a representable, rejectable ErrInvalidArgument rather than an
// unchecked wraparound.
func NthPrime(n int64, opts Options) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d is negative", ErrInvalidArgument, n)
	}
	un := uint64(n)

	method := opts.Method
	if method == Auto {
		method = SelectMethod(n, opts)
	} else if advisory := methodAdvisory(method, un, opts); advisory != "" {
		opts.logf("nth_prime: %s", advisory)
	}

	switch method {
	case Regular:
		return findNthRegular(un, opts)
	case Segmented:
		return findNthSegmented(un, opts)
	case PrimeCounting:
		return findNthByCounting(un, opts)
	default:
		return 0, fmt.Errorf("%w: method=%d", ErrUnknownMethod, method)
	}
}

// SelectMethod resolves what NthPrime would dispatch to for n under Auto,
// without running the search. Callers that force a specific Options.Method
// bypass this; it exists so a caller running under Auto (the common case)
// can report which strategy actually ran instead of echoing "auto" back.
// n is accepted as int64 to mirror NthPrime's signature; a negative n
// resolves to Regular here, whereas NthPrime itself rejects a negative n
// with ErrInvalidArgument before dispatching.
func SelectMethod(n int64, opts Options) Method {
	if n < 0 {
		return Regular
	}
	return selectMethod(uint64(n), opts)
}

func selectMethod(n uint64, opts Options) Method {
	switch {
	case n > opts.PrimeCountingThreshold:
		return PrimeCounting
	case n > opts.RegularThreshold:
		return Segmented
	default:
		return Regular
	}
}

// methodAdvisory returns a non-empty message when a caller-forced method is
// clearly out of its comfort range. It never overrides the caller's choice.
func methodAdvisory(m Method, n uint64, opts Options) string {
	switch m {
	case Regular:
		if n > opts.RegularThreshold {
			return fmt.Sprintf("forced Regular for n=%d, past the regular threshold %d; expect a large sieve buffer", n, opts.RegularThreshold)
		}
	case Segmented:
		if n > opts.PrimeCountingThreshold {
			return fmt.Sprintf("forced Segmented for n=%d, past the prime-counting threshold %d; expect a long window scan", n, opts.PrimeCountingThreshold)
		}
	case PrimeCounting:
		if n < opts.RegularThreshold {
			return fmt.Sprintf("forced PrimeCounting for small n=%d; a Regular sieve would be cheaper here", n)
		}
	}
	return ""
}

// findNthRegular runs a single odds-only sieve, growing its upper bound
// geometrically if the analytic bound undershot.
func findNthRegular(n uint64, opts Options) (uint64, error) {
	k := n + 1
	ub := bounds.Upper(k)
	if ub < 2 {
		ub = 2
	}

	for {
		if ub > uint64(oddsieve.MaxLimit) {
			return 0, fmt.Errorf("%w: regular path needs upper bound %d", ErrSieveLimitOverflow, ub)
		}
		sieved, err := oddsieve.Sieve(uint32(ub))
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrSieveLimitOverflow, err)
		}
		if uint64(len(sieved)) > n {
			return uint64(sieved[n]), nil
		}
		ub = bounds.GrowUpper(ub, uint64(oddsieve.MaxLimit))
	}
}

// findNthSegmented iterates a bounded-memory segmented sieve over growing
// windows of opts.SegmentSize integers, regrowing the base-prime list
// whenever a window's sqrt(hi) outgrows it.
func findNthSegmented(n uint64, opts Options) (uint64, error) {
	seg := uint64(opts.segmentSize())
	lo := uint64(2)
	produced := uint64(0)

	baseLimit := uint32(1024)
	base, err := oddsieve.Sieve(baseLimit)
	if err != nil {
		return 0, err
	}

	for {
		hi := lo + seg - 1
		need := intmath.ISqrt(maxU64(4, hi))
		if uint64(baseLimit) < need {
			grown := need + 1024
			if doubled := uint64(baseLimit) * 2; doubled > grown {
				grown = doubled
			}
			if grown > uint64(oddsieve.MaxLimit) {
				grown = uint64(oddsieve.MaxLimit)
			}
			baseLimit = uint32(grown)
			base, err = oddsieve.Sieve(baseLimit)
			if err != nil {
				return 0, err
			}
		}

		for _, p := range segsieve.Primes(lo, hi, base) {
			if produced == n {
				return p, nil
			}
			produced++
		}
		lo = hi + 1
	}
}

// findNthByCounting brackets the target prime with a binary search on
// pi(x) via the Lucy_Hedgehog recurrence, then resolves it exactly with a
// local segmented sieve.
func findNthByCounting(n uint64, opts Options) (uint64, error) {
	target := n + 1
	lo := bounds.Lower(target)
	hi := bounds.Upper(target)

	rootHi := intmath.ISqrt(hi)
	if rootHi+1 > uint64(oddsieve.MaxLimit) {
		return 0, fmt.Errorf("%w: count-and-zoom root %d exceeds sieve cap", ErrSieveLimitOverflow, rootHi)
	}
	base, err := oddsieve.Sieve(uint32(rootHi) + 1)
	if err != nil {
		return 0, err
	}

	opts.logf("nth_prime: count-and-zoom binary search starting, target=%d lo=%d hi=%d, host=%s",
		target, lo, hi, diag.CPU())

	for iter := 0; lo < hi && iter < binarySearchIterationCap; iter++ {
		mid := lo + (hi-lo)/2
		if lucy.Count(mid, base) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	estimate := lo

	window := clampU64(estimate/10_000, 10_000, 1_000_000)
	start := subFloor(estimate, window/4, 2)
	end := estimate + window

	opts.logf("nth_prime: local window geometry estimate=%d start=%d end=%d", estimate, start, end)

	initialSub := clampU64(uint64(opts.segmentSize()), 1, 100_000)
	if p, ok, err := resolveInWindow(n, start, end, initialSub); err != nil {
		return 0, err
	} else if ok {
		opts.logf("nth_prime: found %d", p)
		return p, nil
	}

	window = maxU64(10_000_000, estimate/100)
	start = subFloor(estimate, window/2, 2)
	end = estimate + window
	opts.logf("nth_prime: expanding local window estimate=%d start=%d end=%d", estimate, start, end)

	// Unlike the initial pass, the expanded fallback honors the caller's
	// full segment size unclamped: if the caller widened it, the fallback
	// should too rather than silently re-imposing the 100,000 default cap.
	expandedSub := uint64(opts.segmentSize())
	p, ok, err := resolveInWindow(n, start, end, expandedSub)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w: n=%d estimate=%d window=[%d,%d]", ErrSearchExhausted, n, estimate, start, end)
	}
	opts.logf("nth_prime: found %d", p)
	return p, nil
}

// resolveInWindow sweeps [start, end] in sub-segments of subSize, counting
// primes from a precomputed pi(start-1) until the n-th prime overall is
// reached. The caller decides subSize: the initial pass clamps it to
// 100,000, the expanded fallback pass does not.
func resolveInWindow(n, start, end, subSize uint64) (uint64, bool, error) {
	rootEnd := intmath.ISqrt(end)
	if rootEnd+1 > uint64(oddsieve.MaxLimit) {
		return 0, false, fmt.Errorf("%w: local window root %d exceeds sieve cap", ErrSieveLimitOverflow, rootEnd)
	}
	base, err := oddsieve.Sieve(uint32(rootEnd) + 1)
	if err != nil {
		return 0, false, err
	}

	var count uint64
	if start > 2 {
		count = lucy.Count(start-1, base)
	}

	for lo := start; lo <= end; lo += subSize {
		hi := lo + subSize - 1
		if hi > end {
			hi = end
		}
		for _, p := range segsieve.Primes(lo, hi, base) {
			if count == n {
				return p, true, nil
			}
			count++
		}
	}
	return 0, false, nil
}

func clampU64(v, lo, hi uint64) uint64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

// subFloor computes max(floor, v-delta) without underflowing uint64.
func subFloor(v, delta, floor uint64) uint64 {
	if delta >= v {
		return floor
	}
	r := v - delta
	if r < floor {
		return floor
	}
	return r
}

// Package lucy computes pi(x), the count of primes <= x, in O(x^0.75) time
// via the Lucy_Hedgehog recurrence over the pivot set
// W(x) = {1..floor(sqrt(x))} U {floor(x/k) : 1 <= k <= floor(sqrt(x))}.
package lucy

import (
	"sort"

	"github.com/jplarose/eratosthenes-sieve/internal/intmath"
)

// Count returns pi(x) given a base-prime list covering every prime
// <= floor(sqrt(x)). Passing a short base list produces an undefined,
// incorrect count.
func Count(x uint64, base []uint32) uint64 {
	if x < 2 {
		return 0
	}
	if x == 2 {
		return 1
	}

	r := intmath.ISqrt(x)
	w, index := buildPivotSet(x, r)

	s := make([]uint64, len(w))
	for i, v := range w {
		s[i] = v - 1
	}

	for _, p32 := range base {
		p := uint64(p32)
		if p*p > x {
			break
		}
		var prev uint64
		if idx, ok := index[p-1]; ok {
			prev = s[idx]
		} else {
			prev = p - 2
		}
		for i := 0; i < len(w) && w[i] >= p*p; i++ {
			q := w[i] / p
			var sq uint64
			if idx, ok := index[q]; ok {
				sq = s[idx]
			} else {
				sq = q - 1
			}
			s[i] -= sq - prev
		}
	}

	return s[index[x]]
}

// buildPivotSet returns W(x) sorted descending, alongside a value->position
// index. The small half (1..r) and large half (floor(x/k) for k=1..r) meet
// at sqrt(x) with at most one overlapping value, so building both directly
// and sorting is cheap relative to the O(r) work the recurrence itself does
// per base prime; it avoids the source's hash-set intermediate entirely.
func buildPivotSet(x, r uint64) ([]uint64, map[uint64]int) {
	w := make([]uint64, 0, 2*r)
	for k := uint64(1); k <= r; k++ {
		w = append(w, x/k)
	}
	for v := uint64(1); v <= r; v++ {
		w = append(w, v)
	}

	sort.Slice(w, func(i, j int) bool { return w[i] > w[j] })
	w = dedupSortedDesc(w)

	index := make(map[uint64]int, len(w))
	for i, v := range w {
		index[v] = i
	}
	return w, index
}

func dedupSortedDesc(w []uint64) []uint64 {
	if len(w) == 0 {
		return w
	}
	out := w[:1]
	for _, v := range w[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

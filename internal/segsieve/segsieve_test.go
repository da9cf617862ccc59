package segsieve

import (
	"testing"

	"github.com/jplarose/eratosthenes-sieve/internal/intmath"
	"github.com/jplarose/eratosthenes-sieve/internal/oddsieve"
)

func baseFor(hi uint64) []uint32 {
	root := intmath.ISqrt(hi)
	base, err := oddsieve.Sieve(uint32(root) + 2)
	if err != nil {
		panic(err)
	}
	return base
}

func TestPrimesSmallWindow(t *testing.T) {
	base := baseFor(100)
	got := Primes(10, 40, base)
	want := []uint64{11, 13, 17, 19, 23, 29, 31, 37}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d]=%d want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestPrimesIncludesTwo(t *testing.T) {
	base := baseFor(10)
	got := Primes(1, 5, base)
	want := []uint64{2, 3, 5}
	if len(got) != len(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestPrimesEmptyWindow(t *testing.T) {
	base := baseFor(10)
	if got := Primes(24, 28, base); len(got) != 0 {
		t.Fatalf("expected no primes in [24,28], got %v", got)
	}
}

func TestPrimesMatchesOddsSieve(t *testing.T) {
	const hi = 200_000
	base := baseFor(hi)
	full, err := oddsieve.Sieve(hi)
	if err != nil {
		t.Fatal(err)
	}

	// Compare a segmented pass over [100000, 200000] against the tail of a
	// full odds-only sieve over the same range.
	const lo = 100_000
	seg := Primes(lo, hi, base)

	var want []uint64
	for _, p := range full {
		if uint64(p) >= lo {
			want = append(want, uint64(p))
		}
	}
	if len(seg) != len(want) {
		t.Fatalf("segment length %d != full-sieve tail length %d", len(seg), len(want))
	}
	for i := range want {
		if seg[i] != want[i] {
			t.Fatalf("mismatch at %d: seg=%d want=%d", i, seg[i], want[i])
		}
	}
}

func TestCheckCoverageDetectsShortBase(t *testing.T) {
	base := []uint32{2, 3, 5}
	if err := CheckCoverage(10_000, base); err == nil {
		t.Fatal("expected coverage error for short base")
	}
	full := baseFor(10_000)
	if err := CheckCoverage(10_000, full); err != nil {
		t.Fatalf("unexpected coverage error: %v", err)
	}
}

package primes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNthPrimeSmallKnownValues(t *testing.T) {
	cases := []struct {
		n    int64
		want uint64
	}{
		{0, 2},
		{1, 3},
		{10, 31},
		{1000, 7927},
		{10_000, 104_743},
	}
	for _, c := range cases {
		got, err := NthPrimeDefault(c.n)
		require.NoError(t, err)
		require.Equalf(t, c.want, got, "NthPrimeDefault(%d)", c.n)
	}
}

func TestNthPrimeLargerKnownValues(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping million-scale nth-prime checks in short mode")
	}
	cases := []struct {
		n    int64
		want uint64
	}{
		{100_000, 1_299_721},
		{1_000_000, 15_485_867},
	}
	for _, c := range cases {
		got, err := NthPrimeDefault(c.n)
		require.NoError(t, err)
		require.Equalf(t, c.want, got, "NthPrimeDefault(%d)", c.n)
	}
}

func TestNthPrimeNegativeIsInvalidArgument(t *testing.T) {
	_, err := NthPrimeDefault(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNthPrimeUnknownMethod(t *testing.T) {
	opts := DefaultOptions()
	opts.Method = Method(42)
	_, err := NthPrime(5, opts)
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestNthPrimeMonotonicAndPrimeSpacing(t *testing.T) {
	var prev uint64
	for n := int64(0); n < 200; n++ {
		got, err := NthPrimeDefault(n)
		require.NoError(t, err)
		require.True(t, isPrimeTrial(got), "%d is not prime (n=%d)", got, n)
		if n > 0 {
			require.Greater(t, got, prev)
			if n >= 2 {
				diff := got - prev
				require.True(t, diff%2 == 0 && diff > 0, "gap between consecutive primes must be positive and even, got %d", diff)
			}
		}
		prev = got
	}
}

func isPrimeTrial(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestNthPrimeCrossMethodAgreement(t *testing.T) {
	grid := []int64{0, 1, 10, 100, 1_000, 10_000}
	if !testing.Short() {
		grid = append(grid, 100_000)
	}
	for _, n := range grid {
		reg, err := NthPrime(n, withMethod(Regular))
		require.NoError(t, err)
		seg, err := NthPrime(n, withMethod(Segmented))
		require.NoError(t, err)
		require.Equalf(t, reg, seg, "Regular vs Segmented mismatch at n=%d", n)

		pc, err := NthPrime(n, withMethod(PrimeCounting))
		require.NoError(t, err)
		require.Equalf(t, reg, pc, "Regular vs PrimeCounting mismatch at n=%d", n)
	}
}

func TestNthPrimeAutoDispatchAgreement(t *testing.T) {
	cases := []struct {
		n int64
		m Method
	}{
		{500, Regular},
		{2_000_000, Segmented},
	}
	if !testing.Short() {
		cases = append(cases, struct {
			n int64
			m Method
		}{15_000_000, PrimeCounting})
	}
	for _, c := range cases {
		auto, err := NthPrime(c.n, DefaultOptions())
		require.NoError(t, err)
		forced, err := NthPrime(c.n, withMethod(c.m))
		require.NoError(t, err)
		require.Equalf(t, forced, auto, "Auto disagreed with forced %s at n=%d", c.m, c.n)
	}
}

func TestNthPrimeAutoThresholdBoundary(t *testing.T) {
	opts := DefaultOptions()
	// Just at the regular threshold: still Regular.
	atThreshold, err := NthPrime(int64(opts.RegularThreshold), opts)
	require.NoError(t, err)
	forcedRegular, err := NthPrime(int64(opts.RegularThreshold), withMethod(Regular))
	require.NoError(t, err)
	require.Equal(t, forcedRegular, atThreshold)
}

func TestNthPrimeForcedMethodEmitsAdvisoryWithoutOverriding(t *testing.T) {
	rl := &recordingLogger{}
	opts := DefaultOptions()
	opts.Method = PrimeCounting
	opts.Logger = rl

	got, err := NthPrime(5, opts) // tiny n, clearly out of PrimeCounting's comfort range
	require.NoError(t, err)
	require.Equal(t, uint64(13), got) // n=5 -> 0-based 6th prime -> 13
	require.NotEmpty(t, rl.lines, "expected an advisory message for an out-of-range forced method")
}

func TestNthPrimeErrorsAreCheckableWithErrorsIs(t *testing.T) {
	_, err := NthPrimeDefault(-5)
	require.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestSelectMethodMatchesAutoDispatch(t *testing.T) {
	opts := DefaultOptions()

	cases := []struct {
		n    int64
		want Method
	}{
		{0, Regular},
		{int64(opts.RegularThreshold), Regular},
		{int64(opts.RegularThreshold) + 1, Segmented},
		{int64(opts.PrimeCountingThreshold), Segmented},
		{int64(opts.PrimeCountingThreshold) + 1, PrimeCounting},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, SelectMethod(c.n, opts), "SelectMethod(%d)", c.n)
	}
}

func withMethod(m Method) Options {
	o := DefaultOptions()
	o.Method = m
	return o
}

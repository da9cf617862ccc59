package primes

import "errors"

// Sentinel errors returned by NthPrime. Wrap with fmt.Errorf("...: %w", ...)
// and unwrap with errors.Is/errors.As, following the sentinel-error
// convention used across this module's reference material.
var (
	// ErrInvalidArgument is returned when n's caller-provided int64 form is
	// negative. Options has no null state in Go (it is a plain struct, not
	// a pointer), so the "null opts" case from the source spec has no
	// analog here — the zero-value Options is a legal, if impractical,
	// configuration; see DESIGN.md.
	ErrInvalidArgument = errors.New("primes: invalid argument")

	// ErrSieveLimitOverflow is returned when the Regular path's working
	// upper bound grew past the odds-only sieve's 32-bit cap. Callers
	// should retry with Options.Method = PrimeCounting.
	ErrSieveLimitOverflow = errors.New("primes: sieve limit overflow")

	// ErrSearchExhausted is returned when the count-and-zoom path's
	// expanded local window did not contain the target prime, indicating a
	// bounds or counting bug rather than a normal input.
	ErrSearchExhausted = errors.New("primes: search exhausted")

	// ErrUnknownMethod is returned when Options.Method is outside the four
	// recognized variants.
	ErrUnknownMethod = errors.New("primes: unknown method")
)

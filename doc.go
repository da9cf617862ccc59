// Package primes computes the n-th prime number (0-based, so n=0 yields 2)
// for indices from 0 up to at least 10^10.
//
// # Basic usage
//
//	p, err := primes.NthPrimeDefault(10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p) // 31
//
// With explicit options:
//
//	opts := primes.DefaultOptions()
//	opts.Method = primes.PrimeCounting
//	opts.Logger = log.New(os.Stderr, "", log.LstdFlags)
//	p, err := primes.NthPrime(999_999_999, opts)
//
// # Package structure
//
//   - Public API: options.go (Options, DefaultOptions), locator.go (NthPrime)
//   - Errors: errors.go
//   - Bound estimation: internal/bounds
//   - Base-prime generation: internal/oddsieve
//   - Bounded-window sieving: internal/segsieve
//   - Sublinear prime counting: internal/lucy
//   - Exact 64-bit integer square roots: internal/intmath
//   - Host diagnostics for advisory logging: internal/diag
package primes

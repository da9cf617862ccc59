// Command nthprime is a CLI driver for the primes package. It is
// deliberately kept outside the core: it owns flag parsing, timing, and
// console reporting, and consumes the pure numeric interface the way any
// external caller would.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jplarose/eratosthenes-sieve"
	"github.com/jplarose/eratosthenes-sieve/internal/diag"
)

func main() {
	n := flag.Int64("n", 0, "0-based index of the prime to find (index 0 -> 2)")
	method := flag.String("method", "auto", "dispatch method: auto, regular, segmented, or prime-counting")
	segmentSize := flag.Int("segment-size", 0, "integers per segmented window (0 = default)")
	regularThreshold := flag.Uint64("regular-threshold", 0, "Auto switches Regular->Segmented above this n (0 = default)")
	primeCountingThreshold := flag.Uint64("prime-counting-threshold", 0, "Auto switches Segmented->PrimeCounting above this n (0 = default)")
	verbose := flag.Bool("verbose", false, "log advisory diagnostics to stderr")
	flag.Parse()

	opts := primes.DefaultOptions()
	m, err := parseMethod(*method)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	opts.Method = m
	if *segmentSize > 0 {
		opts.SegmentSize = *segmentSize
	}
	if *regularThreshold > 0 {
		opts.RegularThreshold = *regularThreshold
	}
	if *primeCountingThreshold > 0 {
		opts.PrimeCountingThreshold = *primeCountingThreshold
	}
	if *verbose {
		opts.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}

	start := time.Now()
	p, err := primes.NthPrime(*n, opts)
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nthprime: %v\n", err)
		os.Exit(1)
	}

	resolved := opts.Method
	if resolved == primes.Auto {
		resolved = primes.SelectMethod(*n, opts)
	}

	fmt.Printf("Results:\n")
	fmt.Printf("Index (0-based):  %d\n", *n)
	fmt.Printf("Prime:            %d\n", p)
	fmt.Printf("Method used:      %s\n", resolved)
	fmt.Printf("Elapsed time:     %.4fs\n", elapsed.Seconds())
	fmt.Printf("Host CPU:         %s\n", diag.CPU())
}

func parseMethod(s string) (primes.Method, error) {
	switch s {
	case "auto":
		return primes.Auto, nil
	case "regular":
		return primes.Regular, nil
	case "segmented":
		return primes.Segmented, nil
	case "prime-counting":
		return primes.PrimeCounting, nil
	default:
		return 0, fmt.Errorf("nthprime: unknown -method %q (want auto, regular, segmented, or prime-counting)", s)
	}
}

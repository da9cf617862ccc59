// Command verify is a fixture-driven checker for the primes package: it
// runs every scenario in a hardcoded table against every method within that
// method's comfort range and prints a table-formatted pass/fail report.
// Like cmd/nthprime, it is an external collaborator that only ever calls
// the package's public interface.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jplarose/eratosthenes-sieve"
)

// scenario is the Go-native equivalent of the reference batch job's
// hardcoded RANGE_START/RANGE_END constants: a fixed table of known-correct
// (n, prime) pairs instead of a live range to sweep.
type scenario struct {
	n    int64
	want uint64
}

var scenarios = []scenario{
	{0, 2},
	{10, 31},
	{1_000, 7_927},
	{10_000, 104_743},
	{100_000, 1_299_721},
	{1_000_000, 15_485_867},
	{10_000_000, 179_424_691},
	{100_000_000, 2_038_074_751},
	{999_999_999, 22_801_763_489},
}

var methods = []primes.Method{primes.Regular, primes.Segmented, primes.PrimeCounting}

// inComfortRange mirrors the thresholds Auto itself uses to dispatch
// (locator.go's selectMethod): Regular is only exercised up to
// RegularThreshold, Segmented up to PrimeCountingThreshold. PrimeCounting
// has no upper bound in the dispatcher, so it stays in range everywhere.
func inComfortRange(m primes.Method, n int64, opts primes.Options) bool {
	un := uint64(n)
	switch m {
	case primes.Regular:
		return un <= opts.RegularThreshold
	case primes.Segmented:
		return un <= opts.PrimeCountingThreshold
	default:
		return true
	}
}

func main() {
	maxN := flag.Int64("max-n", 1_000_000, "skip scenarios with n above this, to keep a quick run quick")
	flag.Parse()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "n\tmethod\twant\tgot\tstatus")

	failures := 0
	for _, sc := range scenarios {
		if sc.n > *maxN {
			continue
		}
		for _, m := range methods {
			opts := primes.DefaultOptions()
			opts.Method = m
			if !inComfortRange(m, sc.n, opts) {
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", sc.n, m, sc.want, "-", "SKIP (out of comfort range)")
				continue
			}
			got, err := primes.NthPrime(sc.n, opts)
			status := "PASS"
			if err != nil {
				status = fmt.Sprintf("ERROR: %v", err)
				failures++
			} else if got != sc.want {
				status = "FAIL"
				failures++
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", sc.n, m, sc.want, got, status)
		}
	}
	w.Flush()

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "verify: %d failure(s)\n", failures)
		os.Exit(1)
	}
	fmt.Println("verify: all scenarios passed")
}

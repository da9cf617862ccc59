package primes

// Method selects which strategy NthPrime dispatches to.
type Method int

const (
	// Auto picks Regular, Segmented, or PrimeCounting based on n and the
	// configured thresholds.
	Auto Method = iota
	// Regular sieves a single contiguous odds-only buffer up front.
	Regular
	// Segmented iterates a bounded-memory odds-only sieve over growing
	// windows.
	Segmented
	// PrimeCounting binary-searches pi(x) via the Lucy_Hedgehog recurrence,
	// then resolves the target exactly with a local segmented sieve.
	PrimeCounting
)

func (m Method) String() string {
	switch m {
	case Auto:
		return "auto"
	case Regular:
		return "regular"
	case Segmented:
		return "segmented"
	case PrimeCounting:
		return "prime-counting"
	default:
		return "unknown"
	}
}

// Logger receives advisory diagnostic messages. It is never required to
// affect correctness; a nil Logger silently drops all messages. Both
// *log.Logger and any type with a compatible Printf method satisfy it.
type Logger interface {
	Printf(format string, args ...any)
}

// Options configures NthPrime. A SegmentSize of zero or less falls back to
// the DefaultOptions segment size; every other field's zero value is a
// legal, if extreme, setting.
type Options struct {
	// Method forces a strategy; Auto (the zero value) selects one based on
	// n and the thresholds below.
	Method Method

	// SegmentSize is the number of integers swept per segmented window.
	SegmentSize int

	// RegularThreshold is the n above which Auto switches from Regular to
	// Segmented.
	RegularThreshold uint64

	// PrimeCountingThreshold is the n above which Auto switches from
	// Segmented to PrimeCounting.
	PrimeCountingThreshold uint64

	// Logger receives advisory messages. Optional.
	Logger Logger
}

// DefaultOptions returns the recommended baseline configuration: Auto
// dispatch, a 1,000,000-integer segment size, and the hand-tuned advisory
// thresholds from the reference implementation this module's dispatch
// policy is modeled on. These thresholds are policy, not contract — a
// caller with different hardware or latency goals should override them.
func DefaultOptions() Options {
	return Options{
		Method:                 Auto,
		SegmentSize:            1_000_000,
		RegularThreshold:       1_000_000,
		PrimeCountingThreshold: 10_000_000,
		Logger:                 nil,
	}
}

func (o Options) logf(format string, args ...any) {
	if o.Logger == nil {
		return
	}
	o.Logger.Printf(format, args...)
}

func (o Options) segmentSize() int {
	if o.SegmentSize <= 0 {
		return DefaultOptions().SegmentSize
	}
	return o.SegmentSize
}

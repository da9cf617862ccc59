// Package diag reports host CPU characteristics for advisory logging. The
// Lucy_Hedgehog count-and-zoom path is the one strategy in this module whose
// wall-clock cost is sensitive to cache size and clock speed, so callers may
// want to know what hardware a run executed on.
package diag

import "github.com/klauspost/cpuid/v2"

// CPUSummary is a snapshot of the identifying fields worth logging alongside
// a count-and-zoom run.
type CPUSummary struct {
	BrandName     string
	PhysicalCores int
	FrequencyHz   int64
}

// CPU returns a summary of the current host's processor.
func CPU() CPUSummary {
	return CPUSummary{
		BrandName:     cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		FrequencyHz:   cpuid.CPU.Hz,
	}
}

// String renders the summary as the CPU brand name only; the core count and
// frequency are not included.
func (c CPUSummary) String() string {
	return c.BrandName
}

package analyzer

import (
	"errors"
	"time"

	"github.com/katalvlaran/gcdlab/gcd"
)

// Sentinel errors returned by the analyzer package.
var (
	// ErrNoSuccessfulRun indicates that no variant produced a usable
	// result for the given operands, so there is nothing to rank.
	ErrNoSuccessfulRun = errors.New("analyzer: no variant produced a successful result")

	// ErrBadIterations indicates a benchmark request with fewer than
	// one repetition.
	ErrBadIterations = errors.New("analyzer: iterations must be at least 1")
)

// VariantResult pairs a variant with its computation outcome.
type VariantResult struct {
	Variant gcd.Variant
	Result  gcd.Result
}

// Comparison is the outcome of CompareAll: one entry per registered
// variant in registration order, plus the overall agreement flag.
type Comparison struct {
	Results []VariantResult

	// Consistent is true when every successful result equals the first
	// successful one; false on any mismatch or when nothing succeeded.
	Consistent bool
}

// BenchmarkResult aggregates repeated runs of one variant.
type BenchmarkResult struct {
	Variant gcd.Variant

	// AvgDuration is the mean wall-clock time over successful runs;
	// zero when none succeeded.
	AvgDuration time.Duration

	// SuccessfulRuns counts runs with StatusSuccess out of TotalRuns.
	SuccessfulRuns uint64
	TotalRuns      uint64
}

// SessionStats is a snapshot of a session's usage counters.
type SessionStats struct {
	TotalExecutions uint64
	TotalDuration   time.Duration
}

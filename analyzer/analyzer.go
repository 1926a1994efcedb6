package analyzer

import (
	"time"

	"github.com/katalvlaran/gcdlab/gcd"
)

// Analyzer is a single-threaded session over the gcd dispatcher. It
// owns its usage counters — an explicit session object rather than
// process-wide mutable state, so parallel sessions and test runs stay
// independent.
type Analyzer struct {
	opts []gcd.Option

	totalExecutions uint64
	totalDuration   time.Duration
}

// New returns a fresh session. The given gcd options (e.g.
// gcd.WithOverflowPolicy) apply to every computation the session runs.
func New(opts ...gcd.Option) *Analyzer {
	return &Analyzer{opts: opts}
}

// Execute runs one variant on (a, b), recording the run in the
// session counters. Result and error semantics are those of
// gcd.Compute.
func (az *Analyzer) Execute(v gcd.Variant, a, b int64) (gcd.Result, error) {
	res, err := gcd.Compute(v, a, b, az.opts...)
	az.record(res)

	return res, err
}

// ExecuteByName is Execute with name-based variant lookup; see
// gcd.ParseVariant for accepted names.
func (az *Analyzer) ExecuteByName(name string, a, b int64) (gcd.Result, error) {
	res, err := gcd.ComputeByName(name, a, b, az.opts...)
	az.record(res)

	return res, err
}

// ExecuteAll runs every registered variant on (a, b) and returns one
// entry per variant in registration order. A variant's failure is
// captured in its Result status, never aborting the sweep: the caller
// sees exactly which strategies diverge (the math.MinInt64 policy is
// the one case where they legitimately can).
func (az *Analyzer) ExecuteAll(a, b int64) []VariantResult {
	variants := gcd.Variants()
	out := make([]VariantResult, 0, len(variants))
	for _, v := range variants {
		res, _ := gcd.Compute(v, a, b, az.opts...)
		az.record(res)
		out = append(out, VariantResult{Variant: v, Result: res})
	}

	return out
}

// CompareAll is ExecuteAll plus the cross-variant agreement verdict.
func (az *Analyzer) CompareAll(a, b int64) Comparison {
	results := az.ExecuteAll(a, b)

	return Comparison{
		Results:    results,
		Consistent: ValidateConsistency(results),
	}
}

// ValidateConsistency reports whether all successful results agree.
// The first successful result is the reference; any successful result
// with a different value fails the check, as does an empty or
// all-failed set.
func ValidateConsistency(results []VariantResult) bool {
	var (
		reference int64
		found     bool
	)
	for _, r := range results {
		if !r.Result.Valid {
			continue
		}
		if !found {
			reference = r.Result.Value
			found = true

			continue
		}
		if r.Result.Value != reference {
			return false
		}
	}

	return found
}

// FindFastest runs every variant once and returns the one with the
// minimum elapsed time among successful results, with its duration.
// Ties break toward registration order (first wins). Returns
// ErrNoSuccessfulRun when nothing succeeded.
func (az *Analyzer) FindFastest(a, b int64) (gcd.Variant, time.Duration, error) {
	var (
		best     gcd.Variant
		bestTime time.Duration
		found    bool
	)
	for _, r := range az.ExecuteAll(a, b) {
		if !r.Result.Valid {
			continue
		}
		// Strict less-than keeps the earliest variant on ties.
		if !found || r.Result.Duration < bestTime {
			best = r.Variant
			bestTime = r.Result.Duration
			found = true
		}
	}
	if !found {
		return best, 0, ErrNoSuccessfulRun
	}

	return best, bestTime, nil
}

// Benchmark runs every variant `iterations` times on (a, b) and
// reports, per variant in registration order, the average duration
// over its successful runs and how many runs succeeded.
func (az *Analyzer) Benchmark(a, b int64, iterations uint64) ([]BenchmarkResult, error) {
	if iterations < 1 {
		return nil, ErrBadIterations
	}

	variants := gcd.Variants()
	out := make([]BenchmarkResult, 0, len(variants))
	for _, v := range variants {
		var (
			total     time.Duration
			successes uint64
		)
		for i := uint64(0); i < iterations; i++ {
			res, _ := gcd.Compute(v, a, b, az.opts...)
			az.record(res)
			if res.Valid {
				total += res.Duration
				successes++
			}
		}

		bench := BenchmarkResult{
			Variant:        v,
			SuccessfulRuns: successes,
			TotalRuns:      iterations,
		}
		if successes > 0 {
			bench.AvgDuration = total / time.Duration(successes)
		}
		out = append(out, bench)
	}

	return out, nil
}

// Stats returns a snapshot of the session counters.
func (az *Analyzer) Stats() SessionStats {
	return SessionStats{
		TotalExecutions: az.totalExecutions,
		TotalDuration:   az.totalDuration,
	}
}

// record folds one computation into the session counters.
func (az *Analyzer) record(res gcd.Result) {
	az.totalExecutions++
	az.totalDuration += res.Duration
}

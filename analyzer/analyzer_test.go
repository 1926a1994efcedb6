package analyzer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gcdlab/analyzer"
	"github.com/katalvlaran/gcdlab/gcd"
)

// AnalyzerSuite exercises the comparison harness under various inputs.
type AnalyzerSuite struct {
	suite.Suite
}

// TestExecuteAllOrderAndAgreement verifies one result per variant, in
// registration order, with a single shared value.
func (s *AnalyzerSuite) TestExecuteAllOrderAndAgreement() {
	az := analyzer.New()
	results := az.ExecuteAll(48, 18)

	require.Len(s.T(), results, len(gcd.Variants()))
	for i, r := range results {
		require.Equal(s.T(), gcd.Variant(i), r.Variant, "registration order broken at %d", i)
		require.True(s.T(), r.Result.Valid)
		require.Equal(s.T(), int64(6), r.Result.Value)
	}
	require.True(s.T(), analyzer.ValidateConsistency(results))
}

// TestCompareAllLargeNeighbors covers the canonical scenario: all seven
// variants succeed on (1000000, 999999) with a single shared value.
func (s *AnalyzerSuite) TestCompareAllLargeNeighbors() {
	cmp := analyzer.New().CompareAll(1000000, 999999)

	require.True(s.T(), cmp.Consistent)
	for _, r := range cmp.Results {
		require.True(s.T(), r.Result.Valid, "%v failed", r.Variant)
		require.Equal(s.T(), int64(1), r.Result.Value)
	}
}

// TestValidateConsistencyRejects covers mismatch, empty and all-failed
// result sets.
func (s *AnalyzerSuite) TestValidateConsistencyRejects() {
	ok := gcd.Result{Value: 6, Status: gcd.StatusSuccess, Valid: true}
	bad := gcd.Result{Value: 7, Status: gcd.StatusSuccess, Valid: true}
	failed := gcd.Result{Value: -1, Status: gcd.StatusOverflow, Valid: false}

	require.False(s.T(), analyzer.ValidateConsistency(nil))
	require.False(s.T(), analyzer.ValidateConsistency([]analyzer.VariantResult{
		{Variant: gcd.EuclideanModulo, Result: failed},
	}))
	require.False(s.T(), analyzer.ValidateConsistency([]analyzer.VariantResult{
		{Variant: gcd.EuclideanModulo, Result: ok},
		{Variant: gcd.SteinBinary, Result: bad},
	}))

	// Failed entries are skipped, not counted as disagreement.
	require.True(s.T(), analyzer.ValidateConsistency([]analyzer.VariantResult{
		{Variant: gcd.EuclideanModulo, Result: ok},
		{Variant: gcd.EuclideanDivision, Result: failed},
		{Variant: gcd.SteinBinary, Result: ok},
	}))
}

// TestFindFastestReturnsRegisteredVariant: the winner must be a
// registered variant with a successful, agreed-upon value.
func (s *AnalyzerSuite) TestFindFastestReturnsRegisteredVariant() {
	v, elapsed, err := analyzer.New().FindFastest(1000000, 999999)
	require.NoError(s.T(), err)
	require.True(s.T(), v.Valid())
	require.GreaterOrEqual(s.T(), int64(elapsed), int64(0))
}

// TestFindFastestNoSuccess: with a MinInt64 operand under the default
// reject policy, every variant fails and there is nothing to rank.
func (s *AnalyzerSuite) TestFindFastestNoSuccess() {
	_, _, err := analyzer.New().FindFastest(math.MinInt64, 8)
	require.ErrorIs(s.T(), err, analyzer.ErrNoSuccessfulRun)
}

// TestMinInt64PolicyDivergence: the documented cross-variant divergence
// point. Reject policy: all overflow, inconsistent by definition.
// Reference policy: all succeed and agree.
func (s *AnalyzerSuite) TestMinInt64PolicyDivergence() {
	reject := analyzer.New().CompareAll(math.MinInt64, 8)
	require.False(s.T(), reject.Consistent)
	for _, r := range reject.Results {
		require.False(s.T(), r.Result.Valid)
		require.Equal(s.T(), gcd.StatusOverflow, r.Result.Status)
	}

	reference := analyzer.New(gcd.WithOverflowPolicy(gcd.ReferenceOnMinInt64)).CompareAll(math.MinInt64, 8)
	require.True(s.T(), reference.Consistent)
	for _, r := range reference.Results {
		require.True(s.T(), r.Result.Valid)
		require.Equal(s.T(), int64(8), r.Result.Value)
	}
}

// TestBenchmarkShape: per-variant aggregates in registration order with
// full success on benign inputs.
func (s *AnalyzerSuite) TestBenchmarkShape() {
	const iterations = 25
	results, err := analyzer.New().Benchmark(48, 18, iterations)
	require.NoError(s.T(), err)
	require.Len(s.T(), results, len(gcd.Variants()))

	for i, r := range results {
		require.Equal(s.T(), gcd.Variant(i), r.Variant)
		require.Equal(s.T(), uint64(iterations), r.TotalRuns)
		require.Equal(s.T(), uint64(iterations), r.SuccessfulRuns)
		require.GreaterOrEqual(s.T(), int64(r.AvgDuration), int64(0))
	}
}

// TestBenchmarkBadIterations rejects a zero repetition count.
func (s *AnalyzerSuite) TestBenchmarkBadIterations() {
	_, err := analyzer.New().Benchmark(48, 18, 0)
	require.ErrorIs(s.T(), err, analyzer.ErrBadIterations)
}

// TestBenchmarkCountsFailures: overflow inputs under the reject policy
// yield zero successful runs and a zero average.
func (s *AnalyzerSuite) TestBenchmarkCountsFailures() {
	results, err := analyzer.New().Benchmark(math.MinInt64, 8, 3)
	require.NoError(s.T(), err)
	for _, r := range results {
		require.Equal(s.T(), uint64(3), r.TotalRuns)
		require.Equal(s.T(), uint64(0), r.SuccessfulRuns)
		require.Equal(s.T(), int64(0), int64(r.AvgDuration))
	}
}

// TestSessionCountersAreOwned: counters accumulate per session and do
// not leak across sessions.
func (s *AnalyzerSuite) TestSessionCountersAreOwned() {
	az := analyzer.New()
	require.Equal(s.T(), uint64(0), az.Stats().TotalExecutions)

	_, err := az.Execute(gcd.EuclideanModulo, 48, 18)
	require.NoError(s.T(), err)
	az.ExecuteAll(48, 18)

	stats := az.Stats()
	require.Equal(s.T(), uint64(1+len(gcd.Variants())), stats.TotalExecutions)
	require.GreaterOrEqual(s.T(), int64(stats.TotalDuration), int64(0))

	// A sibling session starts from zero.
	require.Equal(s.T(), uint64(0), analyzer.New().Stats().TotalExecutions)
}

// TestExecuteByName covers name dispatch and its error path through
// the session.
func (s *AnalyzerSuite) TestExecuteByName() {
	az := analyzer.New()
	res, err := az.ExecuteByName("Stein Binary GCD", 240, 46)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Value)

	_, err = az.ExecuteByName("no-such-algorithm", 240, 46)
	require.ErrorIs(s.T(), err, gcd.ErrUnknownVariant)
}

func TestAnalyzerSuite(t *testing.T) {
	suite.Run(t, new(AnalyzerSuite))
}

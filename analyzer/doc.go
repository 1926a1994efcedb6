// Package analyzer compares the registered GCD variants against each
// other: run them all on one operand pair, assert they agree, find the
// fastest, or benchmark with N repetitions.
//
// 🚀 What is analyzer?
//
//	The gcd package computes one answer with one strategy; analyzer is
//	the harness around it. Cross-variant agreement is the primary
//	correctness property of the whole system, and this package is
//	where it is checked.
//
// ✨ Key features:
//   - ExecuteAll: one Result per registered variant, in stable
//     registration order, with the shared special-case policy applied
//     identically to each — comparisons stay fair
//   - ValidateConsistency: every successful result must equal the first
//     successful one
//   - FindFastest: minimum elapsed time among successes, ties broken by
//     registration order
//   - Benchmark: average duration and successful-run count per variant
//     over N repetitions
//   - Session-owned usage counters (total executions, cumulative time)
//     instead of ambient globals, so independent sessions and test runs
//     cannot interfere
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gcdlab/analyzer"
//
//	az := analyzer.New()
//	cmp := az.CompareAll(1000000, 999999)
//	fmt.Println(cmp.Consistent) // true
//
//	v, elapsed, err := az.FindFastest(48, 18)
//
// Concurrency: an Analyzer is a plain single-threaded session object.
// Its counters are not synchronized; give each goroutine its own
// session if you ever need parallel runs.
package analyzer

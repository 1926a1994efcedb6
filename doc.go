// Package gcdlab is your in-memory laboratory for computing, comparing,
// and benchmarking Greatest Common Divisor algorithms — from the classic
// Euclidean loop to Stein's binary GCD.
//
// 🚀 What is gcdlab?
//
//	A small, focused, dependency-light library that brings together:
//		• Seven GCD strategies: Euclidean (modulo / subtraction / division),
//		  their recursive twins, Extended Euclid, and Stein's binary GCD
//		• A shared special-case policy: zero, equal, and unit operands
//		  answered by definition before any algorithm runs
//		• Explicit overflow handling for math.MinInt64 operands
//		• A dispatcher: run one variant, run them all, find the fastest,
//		  or benchmark with N repetitions
//		• Bézout coefficients (a·x + b·y = gcd) via Extended Euclid
//
// ✨ Why choose gcdlab?
//
//   - Cross-variant agreement – every strategy returns the same value,
//     and the analyzer proves it per input pair
//   - Honest arithmetic – |math.MinInt64| is detected by equality before
//     negation, never by relying on wraparound
//   - Pure Go – no cgo, no hidden deps
//   - Structured results – value, status, iteration count and elapsed
//     time in one struct, errors never thrown as control flow
//
// Under the hood, everything is organized under two packages plus a CLI:
//
//	gcd/        — variants, special-case policy, dispatch & timing
//	analyzer/   — execute-all, consistency check, fastest, benchmark, session stats
//	cmd/gcdlab  — command-line front end (execute, compare, extended, fastest, benchmark, list)
//
// Quick example:
//
//	res, err := gcd.Compute(gcd.SteinBinary, 48, 18)
//	// res.Value == 6
//
// Dive into the walkthroughs under examples/ and the example_test.go
// files in each package.
//
//	go get github.com/katalvlaran/gcdlab/gcd
package gcdlab

// Package gcd computes the Greatest Common Divisor of two signed 64-bit
// integers with seven interchangeable strategies, a shared special-case
// policy, and per-call timing.
//
// 🚀 What is gcd?
//
//	gcd(a, b) is the largest positive integer dividing both a and b.
//	This package implements the classic ways of computing it:
//	  • Euclidean with modulo, subtraction, or explicit division
//	  • Recursive Euclidean (modulo and subtraction forms)
//	  • Extended Euclid, which also yields Bézout coefficients x, y
//	    with a·x + b·y = gcd(a, b)
//	  • Stein's binary GCD, using only shifts and subtraction
//
// ✨ Key features:
//   - one entry point, Compute, dispatching over a closed Variant enum
//   - a shared special-case policy (zero / equal / unit operands) applied
//     before any algorithm runs, so cross-variant comparison is fair
//   - explicit math.MinInt64 handling: |MinInt64| does not fit in int64,
//     so such operands are either rejected (default) or routed to a
//     sign-tolerant reference kernel — choose via WithOverflowPolicy
//   - structured Result: value, status, validity, iteration count and
//     wall-clock duration measured with the monotonic clock
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gcdlab/gcd"
//
//	res, err := gcd.Compute(gcd.EuclideanModulo, 48, 18)
//	if err != nil {
//	  // handle ErrOverflow or ErrUnknownVariant
//	}
//	fmt.Println(res.Value) // 6
//
//	ext, err := gcd.Extended(240, 46)
//	// ext.Gcd == 2 and 240*ext.X + 46*ext.Y == 2
//
// Conventions:
//
//   - gcd(0, 0) = 0. Number theory leaves it undefined; this package
//     defines it as 0 and every variant agrees.
//   - Sign is ignored: gcd(-12, 8) = 4.
//   - Successful results are always ≥ 0.
//
// Performance:
//
//   - Euclidean modulo/division, recursive modulo, Extended Euclid and
//     Stein: O(log min(|a|, |b|)) iterations.
//   - Subtraction forms: O(max/min) worst case — correct but
//     pseudo-polynomial; they exist for comparison, not speed.
//   - Recursion depth for the recursive modulo form is the iteration
//     count, at most ~92 frames for 64-bit inputs.
//
// See examples in example_test.go and the analyzer package for
// execute-all / fastest / benchmark operations.
package gcd

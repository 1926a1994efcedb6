package gcd

import "math"

// safeAbs returns |v|, detecting math.MinInt64 by equality before
// negation: relying on wraparound after the fact is never acceptable.
func safeAbs(v int64) (int64, error) {
	if v == math.MinInt64 {
		return 0, ErrOverflow
	}
	if v < 0 {
		return -v, nil
	}

	return v, nil
}

// abs is the unchecked absolute value for kernel-internal use.
// Precondition: v != math.MinInt64 (the policy layer excludes it).
func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// successResult builds a valid Result.
func successResult(value int64, iterations uint64) Result {
	return Result{
		Value:      value,
		Status:     StatusSuccess,
		Valid:      true,
		Iterations: iterations,
	}
}

// errorResult builds an invalid Result carrying the given status.
// Value -1 marks "no usable value", matching the success invariant
// Value ≥ 0.
func errorResult(status Status) Result {
	return Result{
		Value:  -1,
		Status: status,
		Valid:  false,
	}
}

// applySpecialCases answers inputs whose gcd is determined by
// definition, before any variant-specific logic runs. Every correct
// algorithm must agree on these, so intercepting them uniformly keeps
// cross-variant comparison meaningful and keeps overflow-prone paths
// out of the kernels.
//
// Rules, in priority order:
//  1. gcd(0, 0)  = 0 by convention (undefined in number theory).
//  2. gcd(a, 0)  = |a|;  gcd(0, b) = |b|.
//  3. gcd(a, a)  = |a| for non-zero a.
//  4. gcd(±1, b) = gcd(a, ±1) = 1.
//  5. An operand equal to math.MinInt64 is handled per opts.Overflow:
//     rejected, or routed to the sign-tolerant reference kernel.
//
// The boolean reports whether the input was answered here; when false,
// the caller dispatches to the selected kernel and both operands are
// known to be safe for unchecked negation.
func applySpecialCases(a, b int64, opts Options) (Result, bool) {
	// Rule 1: gcd(0, 0) = 0 by convention.
	if a == 0 && b == 0 {
		return successResult(0, 0), true
	}

	// Rule 2: one zero operand. |MinInt64| is unrepresentable, so
	// gcd(MinInt64, 0) = 2^63 is an overflow under every policy.
	if b == 0 {
		v, err := safeAbs(a)
		if err != nil {
			return errorResult(StatusOverflow), true
		}

		return successResult(v, 0), true
	}
	if a == 0 {
		v, err := safeAbs(b)
		if err != nil {
			return errorResult(StatusOverflow), true
		}

		return successResult(v, 0), true
	}

	// Rule 3: equal operands. Covers gcd(MinInt64, MinInt64) = 2^63,
	// again an overflow under every policy.
	if a == b {
		v, err := safeAbs(a)
		if err != nil {
			return errorResult(StatusOverflow), true
		}

		return successResult(v, 0), true
	}

	// Rule 4: unit operand. MinInt64 cannot interfere: the result is 1.
	if a == 1 || a == -1 || b == 1 || b == -1 {
		return successResult(1, 0), true
	}

	// Rule 5: exactly one operand may still be MinInt64 here (equal
	// operands were rule 3). The gcd divides the other operand, so it
	// is representable; whether we compute it is a policy choice.
	if a == math.MinInt64 || b == math.MinInt64 {
		switch opts.Overflow {
		case ReferenceOnMinInt64:
			v, iters := gcdReference(a, b)

			return successResult(v, iters), true
		default:
			return errorResult(StatusOverflow), true
		}
	}

	return Result{}, false
}

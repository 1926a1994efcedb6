package gcd

import "math"

// ValidateResult reports whether result is mathematically correct as
// gcd(a, b): it divides both operands, respects the zero conventions,
// and is no larger than the smaller non-zero operand.
//
// Used by the analyzer's consistency checks and available to callers
// who want to audit a value from an untrusted source.
func ValidateResult(a, b, result int64) bool {
	// gcd(0, 0) = 0 by convention; everywhere else the gcd is positive.
	if a == 0 && b == 0 {
		return result == 0
	}
	if result <= 0 {
		return false
	}

	// Divisibility is checked on the raw operands: truncated division
	// makes a%result == 0 equivalent to |a|%result == 0, and avoids
	// negating math.MinInt64.
	if a != 0 && a%result != 0 {
		return false
	}
	if b != 0 && b%result != 0 {
		return false
	}

	// A single zero operand pins the gcd to the other's magnitude.
	if a == 0 {
		return b == result || b == -result
	}
	if b == 0 {
		return a == result || a == -result
	}

	// Both non-zero: the gcd cannot exceed the smaller magnitude.
	// math.MinInt64 operands are larger in magnitude than any positive
	// result, so they never bind.
	if a != math.MinInt64 && b != math.MinInt64 {
		smaller := abs(a)
		if v := abs(b); v < smaller {
			smaller = v
		}
		if result > smaller {
			return false
		}
	}

	return true
}

// ValidateExtendedResult reports whether ext is a correct Extended
// Euclidean outcome for (a, b): the gcd part passes ValidateResult and
// the Bézout identity a·x + b·y = gcd holds.
func ValidateExtendedResult(a, b int64, ext ExtendedResult) bool {
	if !ext.Valid {
		return false
	}
	if !ValidateResult(a, b, ext.Gcd) {
		return false
	}

	return a*ext.X+b*ext.Y == ext.Gcd
}

package gcd

import "math"

// Extended runs the Extended Euclidean algorithm and returns the gcd of
// a and b together with Bézout coefficients x, y satisfying
//
//	a·x + b·y = gcd(a, b)
//
// for the original signed operands. The gcd itself is always ≥ 0.
//
// Conventions match Compute: gcd(0, 0) = 0 (with x = y = 0), sign is
// ignored for the gcd value, and math.MinInt64 operands follow the
// configured OverflowPolicy. gcd(MinInt64, MinInt64) and
// gcd(MinInt64, 0) fail under every policy: 2^63 has no int64
// representation.
//
// Example:
//
//	ext, err := gcd.Extended(240, 46)
//	// ext.Gcd == 2, 240*ext.X + 46*ext.Y == 2
func Extended(a, b int64, opts ...Option) (ExtendedResult, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	// gcd(0, 0) = 0 by convention; the identity holds with x = y = 0.
	if a == 0 && b == 0 {
		return ExtendedResult{Gcd: 0, X: 0, Y: 0, Valid: true}, nil
	}

	// One zero operand: gcd is the other's absolute value and the
	// matching coefficient is ±1.
	if b == 0 {
		g, err := safeAbs(a)
		if err != nil {
			return ExtendedResult{Gcd: -1}, err
		}
		x := int64(1)
		if a < 0 {
			x = -1
		}

		return ExtendedResult{Gcd: g, X: x, Y: 0, Valid: true}, nil
	}
	if a == 0 {
		g, err := safeAbs(b)
		if err != nil {
			return ExtendedResult{Gcd: -1}, err
		}
		y := int64(1)
		if b < 0 {
			y = -1
		}

		return ExtendedResult{Gcd: g, X: 0, Y: y, Valid: true}, nil
	}

	if options.Overflow == RejectMinInt64 && (a == math.MinInt64 || b == math.MinInt64) {
		return ExtendedResult{Gcd: -1}, ErrOverflow
	}

	// The recurrence maintains a·x + b·y = g for the raw signed values
	// at every level, so no operand normalization is needed — which is
	// exactly what makes the reference policy safe for MinInt64.
	g, x, y, _ := extEuclid(a, b)

	// g carries the sign of the deepest non-zero remainder; flip the
	// whole triple to make it positive. g == MinInt64 only for the
	// (MinInt64, MinInt64) pair, whose gcd is unrepresentable.
	if g == math.MinInt64 {
		return ExtendedResult{Gcd: -1}, ErrOverflow
	}
	if g < 0 {
		g, x, y = -g, -x, -y
	}

	return ExtendedResult{Gcd: g, X: x, Y: y, Valid: true}, nil
}

// extEuclid — recursive Extended Euclid with back-substitution.
//
// Description:
//
//	Base case gcd(a, 0) = a with (x, y) = (1, 0). Otherwise, from
//	gcd(b, a mod b) = b·x₁ + (a mod b)·y₁ it follows that
//	gcd(a, b) = a·y₁ + b·(x₁ − ⌊a/b⌋·y₁) — naturally expressed
//	top-down, which is why this variant stays recursive.
//
//	Depth equals the modulo recurrence's iteration count,
//	O(log min(|a|, |b|)).
func extEuclid(a, b int64) (g, x, y int64, depth uint64) {
	if b == 0 {
		return a, 1, 0, 0
	}

	g, x1, y1, depth := extEuclid(b, a%b)

	return g, y1, x1 - (a/b)*y1, depth + 1
}

// extendedValue adapts the extended kernel to the plain-value dispatch
// path: only the gcd magnitude and recursion depth are reported.
// Precondition: neither operand is math.MinInt64.
func extendedValue(a, b int64) (int64, uint64) {
	g, _, _, depth := extEuclid(abs(a), abs(b))

	return g, depth
}

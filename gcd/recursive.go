package gcd

// recursiveModulo — the Euclidean modulo recurrence expressed as a
// self-call instead of a loop.
//
// Description:
//
//	gcd(a, 0) = a; gcd(a, b) = gcd(b, a mod b). The reported count is
//	the recursion depth, which equals the loop iteration count of
//	euclidModulo. Depth is O(log min(|a|, |b|)) — at most ~92 frames
//	for 64-bit inputs, negligible for any realistic stack limit.
//
// Precondition: neither operand is math.MinInt64.
func recursiveModulo(a, b int64) (int64, uint64) {
	return recurseModulo(abs(a), abs(b))
}

// recurseModulo is the bare recurrence on non-negative operands.
func recurseModulo(a, b int64) (int64, uint64) {
	if b == 0 {
		return a, 0
	}

	v, depth := recurseModulo(b, a%b)

	return v, depth + 1
}

// recursiveSubtraction — the subtraction recurrence as a self-call.
//
// Description:
//
//	gcd(a, a) = a; gcd(a, b) = gcd(a-b, b) for a > b, else gcd(a, b-a).
//	Depth is O(max/min) in the worst case, the same pseudo-polynomial
//	bound as the iterative form; for wildly unbalanced operands the
//	iterative variant is the safer pick.
//
// Precondition: neither operand is math.MinInt64.
func recursiveSubtraction(a, b int64) (int64, uint64) {
	a, b = abs(a), abs(b)

	// Zero guards before recursing: the recurrence only terminates on
	// equality, which (v, 0) never reaches.
	if a == 0 {
		return b, 0
	}
	if b == 0 {
		return a, 0
	}

	return recurseSubtraction(a, b)
}

// recurseSubtraction is the bare recurrence on positive operands.
func recurseSubtraction(a, b int64) (int64, uint64) {
	if a == b {
		return a, 0
	}

	var (
		v     int64
		depth uint64
	)
	if a > b {
		v, depth = recurseSubtraction(a-b, b)
	} else {
		v, depth = recurseSubtraction(a, b-a)
	}

	return v, depth + 1
}

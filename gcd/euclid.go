package gcd

// euclidModulo — classic iterative Euclidean algorithm.
//
// Description:
//
//	Replace (a, b) with (b, a mod b) until b = 0; the surviving a is
//	the gcd. The remainder strictly decreases, so termination is
//	immediate and the iteration count is O(log min(|a|, |b|)).
//
// Precondition: neither operand is math.MinInt64 (policy layer).
// Safe to call directly on zero, equal or negative inputs.
func euclidModulo(a, b int64) (int64, uint64) {
	a, b = abs(a), abs(b)

	var iters uint64
	for b != 0 {
		a, b = b, a%b
		iters++
	}

	return a, iters
}

// euclidSubtraction — iterative Euclidean algorithm by repeated
// subtraction.
//
// Description:
//
//	Subtract the smaller operand from the larger until both are equal;
//	that common value is the gcd. The operand sum strictly decreases,
//	so the loop terminates, but the step count is O(max/min) in the
//	worst case — pseudo-polynomial. Kept for comparison, not speed.
//
// Precondition: neither operand is math.MinInt64.
func euclidSubtraction(a, b int64) (int64, uint64) {
	a, b = abs(a), abs(b)

	// Zero guards: subtraction never reaches equality from (v, 0).
	if a == 0 {
		return b, 0
	}
	if b == 0 {
		return a, 0
	}

	var iters uint64
	for a != b {
		if a > b {
			a -= b
		} else {
			b -= a
		}
		iters++
	}

	return a, iters
}

// euclidDivision — iterative Euclidean algorithm with an explicit
// quotient and multiply-subtract remainder.
//
// Description:
//
//	Behaviorally identical to euclidModulo; the remainder is computed
//	as a - b*(a/b) instead of a % b. Same termination argument, same
//	O(log min(|a|, |b|)) bound.
//
// Precondition: neither operand is math.MinInt64.
func euclidDivision(a, b int64) (int64, uint64) {
	a, b = abs(a), abs(b)

	var iters uint64
	for b != 0 {
		q := a / b
		r := a - b*q
		a, b = b, r
		iters++
	}

	return a, iters
}

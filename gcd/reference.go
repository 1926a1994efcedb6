package gcd

// gcdReference — sign-tolerant reference Euclid.
//
// Description:
//
//	The plain modulo recurrence run on the raw signed operands, with
//	the absolute value taken only of the final remainder. Because no
//	operand is ever negated, it is the one kernel that can accept
//	math.MinInt64 directly; the ReferenceOnMinInt64 policy routes
//	there. It also serves as the obviously-correct cross-check in
//	tests.
//
// Precondition: the final gcd must be representable, i.e. the operands
// are not (MinInt64, 0) or (MinInt64, MinInt64) — the policy layer
// answers those with an overflow error first.
func gcdReference(a, b int64) (int64, uint64) {
	var iters uint64
	for b != 0 {
		a, b = b, a%b
		iters++
	}

	// Truncated division gives remainders the dividend's sign, so the
	// surviving value may be negative.
	if a < 0 {
		a = -a
	}

	return a, iters
}

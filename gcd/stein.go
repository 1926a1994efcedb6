package gcd

// steinBinary — Stein's binary GCD.
//
// Description:
//
//	Avoids division and modulo entirely:
//	 1. Strip the factors of 2 common to both operands (right-shifts),
//	    remembering how many were removed.
//	 2. Make a odd. Then, while b ≠ 0: make b odd, and subtract the
//	    smaller odd value from the larger (an odd minus an odd is
//	    even, so the next pass strips at least one bit).
//	 3. Restore the shared factor of 2 with a final left-shift.
//
//	Each full cycle halves a magnitude, giving O(log min(|a|, |b|))
//	iterations on shift and subtract operations only.
//
// Precondition: neither operand is math.MinInt64.
// Safe to call directly on zero, equal or negative inputs.
func steinBinary(a, b int64) (int64, uint64) {
	a, b = abs(a), abs(b)

	if a == 0 {
		return b, 0
	}
	if b == 0 {
		return a, 0
	}

	var iters uint64

	// Strip the shared factors of 2.
	var shift uint
	for (a|b)&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
		iters++
	}

	// Make a odd; its removed twos are not shared.
	for a&1 == 0 {
		a >>= 1
		iters++
	}

	// Invariant: a is odd from here on.
	for b != 0 {
		for b&1 == 0 {
			b >>= 1
			iters++
		}

		// Both odd now; keep the smaller in a, put the even
		// difference in b.
		if a > b {
			a, b = b, a-b
		} else {
			b -= a
		}
		iters++
	}

	return a << shift, iters
}

package gcd

import "time"

// Compute runs the selected variant on (a, b) and returns a structured
// Result plus a matching sentinel error when the status is not success.
//
// Control flow: the shared special-case policy answers zero, equal and
// unit operands first (and applies the math.MinInt64 policy), so every
// variant sees the same preconditions and their timings stay
// comparable. Only the kernel call itself is timed, with the runtime
// monotonic clock; special-cased answers report a zero duration.
//
// Dispatch is a switch over the closed Variant set — the registry is a
// fixed table of seven strategies, not a plugin system. An unregistered
// variant yields ErrUnknownVariant with StatusNotImplemented.
func Compute(v Variant, a, b int64, opts ...Option) (Result, error) {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if !v.Valid() {
		return errorResult(StatusNotImplemented), ErrUnknownVariant
	}

	if res, handled := applySpecialCases(a, b, options); handled {
		return res, statusError(res.Status)
	}

	// Past the policy layer both operands are non-zero, unequal,
	// non-unit and never math.MinInt64: kernels may negate freely.
	var (
		value int64
		iters uint64
		start = time.Now()
	)
	switch v {
	case EuclideanModulo:
		value, iters = euclidModulo(a, b)
	case EuclideanSubtraction:
		value, iters = euclidSubtraction(a, b)
	case EuclideanDivision:
		value, iters = euclidDivision(a, b)
	case RecursiveModulo:
		value, iters = recursiveModulo(a, b)
	case RecursiveSubtraction:
		value, iters = recursiveSubtraction(a, b)
	case ExtendedEuclidean:
		value, iters = extendedValue(a, b)
	case SteinBinary:
		value, iters = steinBinary(a, b)
	}
	elapsed := time.Since(start)

	res := successResult(value, iters)
	res.Duration = elapsed

	return res, nil
}

// ComputeByName resolves a canonical or display name (see ParseVariant)
// and delegates to Compute. An unknown name yields ErrUnknownVariant
// with StatusNotImplemented.
func ComputeByName(name string, a, b int64, opts ...Option) (Result, error) {
	v, err := ParseVariant(name)
	if err != nil {
		return errorResult(StatusNotImplemented), err
	}

	return Compute(v, a, b, opts...)
}

// GCD is the plain convenience entry: the gcd of a and b via the
// Euclidean modulo variant under default options. The error surface is
// kept explicit — math.MinInt64 operands return ErrOverflow rather
// than a silently clamped value.
func GCD(a, b int64) (int64, error) {
	res, err := Compute(EuclideanModulo, a, b)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// statusError maps a Result status to its sentinel error; nil for
// success.
func statusError(s Status) error {
	switch s {
	case StatusSuccess:
		return nil
	case StatusOverflow:
		return ErrOverflow
	case StatusNotImplemented:
		return ErrUnknownVariant
	default:
		return nil
	}
}

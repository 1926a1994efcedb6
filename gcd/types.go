// Package gcd defines the variant set, result types, options and
// sentinel errors shared by all GCD strategies.
package gcd

import (
	"errors"
	"strings"
	"time"
)

// Sentinel errors returned by the gcd package.
var (
	// ErrOverflow indicates an operand equal to math.MinInt64 whose
	// absolute value cannot be represented in int64.
	ErrOverflow = errors.New("gcd: absolute value of math.MinInt64 overflows int64")

	// ErrUnknownVariant indicates a Variant value or name outside the
	// registered set.
	ErrUnknownVariant = errors.New("gcd: unknown algorithm variant")
)

// Variant identifies one of the seven registered GCD strategies.
//
// The zero value is EuclideanModulo. Variants carry no state; they are
// pure selectors dispatched by Compute via a switch, not function
// pointers, because the set is closed and small.
type Variant int

const (
	// EuclideanModulo — iterative: replace (a, b) with (b, a mod b) until b = 0.
	EuclideanModulo Variant = iota

	// EuclideanSubtraction — iterative: subtract the smaller operand from
	// the larger until they are equal.
	EuclideanSubtraction

	// EuclideanDivision — iterative: explicit quotient then
	// multiply-subtract; behaviorally identical to EuclideanModulo.
	EuclideanDivision

	// RecursiveModulo — the modulo recurrence expressed as a self-call.
	RecursiveModulo

	// RecursiveSubtraction — the subtraction recurrence as a self-call.
	RecursiveSubtraction

	// ExtendedEuclidean — recursive Euclid with Bézout back-substitution;
	// Compute reports only the gcd value, Extended reports coefficients.
	ExtendedEuclidean

	// SteinBinary — Stein's binary GCD: shifts and subtraction only,
	// no division or modulo.
	SteinBinary

	// numVariants bounds the registered set; keep it last.
	numVariants
)

// canonical names, indexed by Variant. Registration order is the
// declaration order above and is stable across releases.
var variantNames = [numVariants]string{
	EuclideanModulo:      "euclidean-modulo",
	EuclideanSubtraction: "euclidean-subtraction",
	EuclideanDivision:    "euclidean-division",
	RecursiveModulo:      "recursive-modulo",
	RecursiveSubtraction: "recursive-subtraction",
	ExtendedEuclidean:    "extended-euclidean",
	SteinBinary:          "stein-binary",
}

// human-readable display names, indexed by Variant.
var variantDisplayNames = [numVariants]string{
	EuclideanModulo:      "Euclidean Modulo",
	EuclideanSubtraction: "Euclidean Subtraction",
	EuclideanDivision:    "Euclidean Division",
	RecursiveModulo:      "Recursive Modulo",
	RecursiveSubtraction: "Recursive Subtraction",
	ExtendedEuclidean:    "Extended Euclidean",
	SteinBinary:          "Stein Binary GCD",
}

// Valid reports whether v is one of the registered variants.
func (v Variant) Valid() bool {
	return v >= 0 && v < numVariants
}

// String returns the canonical kebab-case name, or "unknown" for
// out-of-range values.
func (v Variant) String() string {
	if !v.Valid() {
		return "unknown"
	}

	return variantNames[v]
}

// DisplayName returns the human-readable name used in listings and CLI
// output, or "Unknown" for out-of-range values.
func (v Variant) DisplayName() string {
	if !v.Valid() {
		return "Unknown"
	}

	return variantDisplayNames[v]
}

// Variants returns all registered variants in registration order.
// The slice is freshly allocated; callers may reorder it freely.
func Variants() []Variant {
	out := make([]Variant, numVariants)
	for i := range out {
		out[i] = Variant(i)
	}

	return out
}

// ParseVariant resolves a canonical ("stein-binary") or display
// ("Stein Binary GCD") name to its Variant, case-insensitively.
// Returns ErrUnknownVariant when no registered name matches.
//
// Lookup is a linear scan: the set has seven entries and name-based
// dispatch is not a hot path.
func ParseVariant(name string) (Variant, error) {
	var v Variant
	for v = 0; v < numVariants; v++ {
		if strings.EqualFold(name, variantNames[v]) || strings.EqualFold(name, variantDisplayNames[v]) {
			return v, nil
		}
	}

	return numVariants, ErrUnknownVariant
}

// Status classifies the outcome of a computation. It travels inside
// Result so callers can always inspect the outcome without unwrapping
// an error chain.
type Status int

const (
	// StatusSuccess — the result value is the gcd.
	StatusSuccess Status = iota

	// StatusInvalidInput — a malformed request (reserved; every int64
	// pair is currently a valid request).
	StatusInvalidInput

	// StatusDivisionByZero — declared for taxonomy completeness; not
	// reachable in practice since every kernel guards b != 0 before
	// dividing.
	StatusDivisionByZero

	// StatusOverflow — an operand's absolute value does not fit in int64.
	StatusOverflow

	// StatusNotImplemented — unknown variant identifier or name.
	StatusNotImplemented

	// StatusUnknown — internal error that fits no other class.
	StatusUnknown
)

// String returns a short lower-case label for the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInvalidInput:
		return "invalid-input"
	case StatusDivisionByZero:
		return "division-by-zero"
	case StatusOverflow:
		return "overflow"
	case StatusNotImplemented:
		return "not-implemented"
	default:
		return "unknown"
	}
}

// Result is the structured outcome of a single GCD computation.
//
// Invariant: when Status == StatusSuccess, Value ≥ 0, with Value == 0
// only for gcd(0, 0).
type Result struct {
	Value      int64         // gcd magnitude; -1 on error
	Status     Status        // outcome classification
	Valid      bool          // Status == StatusSuccess
	Iterations uint64        // loop iterations or recursion depth
	Duration   time.Duration // wall-clock time around the kernel call
}

// ExtendedResult is the outcome of the Extended Euclidean algorithm.
//
// Invariant: when Valid, a·X + b·Y == Gcd for the original signed
// operands a and b.
type ExtendedResult struct {
	Gcd   int64 // the greatest common divisor, ≥ 0
	X     int64 // Bézout coefficient for the first operand
	Y     int64 // Bézout coefficient for the second operand
	Valid bool  // whether the triple satisfies the identity
}

// OverflowPolicy decides what happens when an operand equals
// math.MinInt64, the one int64 whose absolute value is unrepresentable.
type OverflowPolicy int

const (
	// RejectMinInt64 returns ErrOverflow / StatusOverflow. Default.
	RejectMinInt64 OverflowPolicy = iota

	// ReferenceOnMinInt64 routes the computation to a sign-tolerant
	// reference kernel that never takes an operand's absolute value.
	// gcd(MinInt64, MinInt64) and gcd(MinInt64, 0) still fail: their
	// gcd is 2^63, which no int64 can hold.
	ReferenceOnMinInt64
)

// Options configures a computation.
//
// Overflow — policy for math.MinInt64 operands (default RejectMinInt64).
type Options struct {
	Overflow OverflowPolicy
}

// Option is a functional option for Compute, ComputeByName and Extended.
type Option func(*Options)

// WithOverflowPolicy selects the math.MinInt64 handling policy.
func WithOverflowPolicy(p OverflowPolicy) Option {
	return func(o *Options) {
		o.Overflow = p
	}
}

// DefaultOptions returns the default configuration: reject
// math.MinInt64 operands.
func DefaultOptions() Options {
	return Options{Overflow: RejectMinInt64}
}

package gcd_test

import (
	"testing"

	"github.com/katalvlaran/gcdlab/gcd"
)

// benchmarkVariant runs one variant on a fixed worst-case-ish pair.
// Consecutive Fibonacci numbers maximize Euclidean iteration counts.
func benchmarkVariant(b *testing.B, v gcd.Variant, x, y int64) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gcd.Compute(v, x, y); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

func BenchmarkCompute_EuclideanModulo(b *testing.B) {
	benchmarkVariant(b, gcd.EuclideanModulo, 1836311903, 1134903170)
}

func BenchmarkCompute_EuclideanDivision(b *testing.B) {
	benchmarkVariant(b, gcd.EuclideanDivision, 1836311903, 1134903170)
}

// Subtraction variants get a gentler pair: on Fibonacci inputs every
// subtraction step shrinks the sum by the smaller operand, which is
// fine, but (n, 1)-shaped pairs would degenerate to n steps.
func BenchmarkCompute_EuclideanSubtraction(b *testing.B) {
	benchmarkVariant(b, gcd.EuclideanSubtraction, 1836311903, 1134903170)
}

func BenchmarkCompute_RecursiveModulo(b *testing.B) {
	benchmarkVariant(b, gcd.RecursiveModulo, 1836311903, 1134903170)
}

func BenchmarkCompute_ExtendedEuclidean(b *testing.B) {
	benchmarkVariant(b, gcd.ExtendedEuclidean, 1836311903, 1134903170)
}

func BenchmarkCompute_SteinBinary(b *testing.B) {
	benchmarkVariant(b, gcd.SteinBinary, 1836311903, 1134903170)
}

func BenchmarkExtended(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gcd.Extended(1836311903, 1134903170); err != nil {
			b.Fatalf("Extended failed: %v", err)
		}
	}
}

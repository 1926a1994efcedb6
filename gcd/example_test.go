package gcd_test

import (
	"fmt"

	"github.com/katalvlaran/gcdlab/gcd"
)

// ExampleCompute demonstrates running a single variant.
func ExampleCompute() {
	res, err := gcd.Compute(gcd.SteinBinary, 48, 18)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Value)
	// Output:
	// 6
}

// ExampleComputeByName demonstrates name-based dispatch; both canonical
// and display names are accepted.
func ExampleComputeByName() {
	res, _ := gcd.ComputeByName("euclidean-modulo", -12, 8)
	fmt.Println(res.Value)
	// Output:
	// 4
}

// ExampleExtended demonstrates Bézout coefficients: 240·x + 46·y = 2.
func ExampleExtended() {
	ext, err := gcd.Extended(240, 46)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("gcd=%d x=%d y=%d check=%d\n", ext.Gcd, ext.X, ext.Y, 240*ext.X+46*ext.Y)
	// Output:
	// gcd=2 x=-9 y=47 check=2
}

// ExampleVariants lists the registry in registration order.
func ExampleVariants() {
	for _, v := range gcd.Variants() {
		fmt.Printf("%s: %s\n", v, v.DisplayName())
	}
	// Output:
	// euclidean-modulo: Euclidean Modulo
	// euclidean-subtraction: Euclidean Subtraction
	// euclidean-division: Euclidean Division
	// recursive-modulo: Recursive Modulo
	// recursive-subtraction: Recursive Subtraction
	// extended-euclidean: Extended Euclidean
	// stein-binary: Stein Binary GCD
}

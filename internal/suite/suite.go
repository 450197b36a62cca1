// Package suite declares the built-in demonstration test cases. Cases are
// registered with explicit top-level calls so registration order, and with it
// execution and display order, is exactly the order written here.
package suite

import (
	"strings"

	"gcheck/internal/harness"
)

// Register adds the always-passing demonstration cases to r
func Register(r *harness.Registry) {
	harness.NewCase("Addition", r, func(t *harness.T) error {
		i1 := 2
		i2 := 3

		addition := i1 + i2
		expectedResult := 5

		harness.Check(t, addition, expectedResult)
		return nil
	})

	harness.NewCase("StringBuilding", r, func(t *harness.T) error {
		harness.Check(t, "go"+"check", "gocheck")
		harness.Check(t, strings.ToUpper("summary"), "SUMMARY")
		harness.Check(t, strings.Repeat("ab", 3), "ababab")
		return nil
	})

	harness.NewCase("BooleanLogic", r, func(t *harness.T) error {
		harness.Check(t, 5 > 3, true)
		harness.Check(t, strings.Contains("registry", "gist"), true)
		harness.Check(t, len("") == 0, true)
		return nil
	})

	harness.NewCase("IntegerSequence", r, func(t *harness.T) error {
		squares := []int{0, 1, 4, 9, 16}
		for n := 1; n < len(squares); n++ {
			harness.Check(t, n*n, squares[n])
		}
		return nil
	})

	harness.NewCase("NamedChecks", r, func(t *harness.T) error {
		harness.CheckNamed(t, "sum", 10+20, 30)
		harness.CheckNamed(t, "difference", 20-10, 10)
		harness.CheckNamed(t, "product", 10*20, 200)
		return nil
	})
}

package suite

import "gcheck/internal/harness"

// RegisterShowcase adds cases that demonstrate the failure reporting: a
// failed check, a boolean mismatch, a body ending in a fault and a case with
// no checks at all. Useful for exercising the report, the stored record and
// the fails viewer.
func RegisterShowcase(r *harness.Registry) {
	harness.NewCase("FailingAddition", r, func(t *harness.T) error {
		harness.Check(t, 2+3, 5)
		harness.Check(t, 2+3, 6)
		return nil
	})

	harness.NewCase("BoolMismatch", r, func(t *harness.T) error {
		harness.Check(t, true, false)
		return nil
	})

	harness.NewCase("ThrowsAfterCheck", r, func(t *harness.T) error {
		values := []int{10, 20, 30}
		harness.Check(t, values[1], 20)

		index := len(values) + 4
		return harness.Faultf("OutOfRange", "index %d out of range for %d values", index, len(values))
	})

	harness.NewCase("NeverPerformed", r, func(t *harness.T) error {
		return nil
	})
}

// Package harness implements the registration-and-execution engine: a
// registry of named test cases, generic equality checks recorded per case,
// and a sequential runner that streams outcomes to a reporter.
//
// The model is strictly single-threaded. All cases are registered before
// RunAll is called and execute one at a time in registration order, so no
// locking exists anywhere; registering cases or reading results while a run
// is in flight is unsupported. There is no cancellation or timeout either,
// so a body that never returns hangs the whole run.
package harness

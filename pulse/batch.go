package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// Batch defers every effect triggered inside f until f returns, so
// effects observe only the final state of a group of writes instead of
// running once per intermediate write. Batches nest: only the outermost
// Batch's return triggers the flush.
func Batch(f func()) { kernel.GetRuntime().Batch(f) }

// Untrack reads a value without registering it as a dependency of the
// ambient tracked evaluation, even if called from inside a Computed's
// compute or an Effect's run.
func Untrack[T any](f func() T) T {
	var result T
	kernel.GetRuntime().Untrack(func() { result = f() })
	return result
}

// OnRenderSettled registers a one-shot callback that fires once the
// render-lane effect queue has drained. If nothing is pending, it fires
// immediately.
func OnRenderSettled(f func()) { kernel.GetRuntime().Scheduler().OnRenderSettled(f) }

// OnUserSettled registers a one-shot callback that fires once the
// user-lane effect queue has drained. If nothing is pending, it fires
// immediately.
func OnUserSettled(f func()) { kernel.GetRuntime().Scheduler().OnUserSettled(f) }

// OnSettled registers a one-shot callback that fires once both effect
// lanes have fully drained. If nothing is pending, it fires immediately.
func OnSettled(f func()) { kernel.GetRuntime().Scheduler().OnSettled(f) }

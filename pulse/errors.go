package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// ErrCycleDetected is the error a settle panics with when recomputing a
// node re-enters itself, directly or through intermediate ancestors.
var ErrCycleDetected = kernel.ErrCycleDetected

// ErrDisposedUse is returned by Owner.Run when called on an already
// disposed owner.
var ErrDisposedUse = kernel.ErrDisposedUse

// ComputeError wraps a panic recovered from a Computed's compute
// function. The node is left in a state that retries on the next read.
type ComputeError = kernel.ComputeError

// EffectError wraps a panic recovered from an Effect's run function. It
// is reported through Hooks.OnEffectError and does not stop sibling
// effects from running.
type EffectError = kernel.EffectError

// ListenerError wraps a panic recovered from a Signal.Subscribe callback.
// It is reported through Hooks.OnListenerError and does not stop the
// remaining listeners from being notified.
type ListenerError = kernel.ListenerError

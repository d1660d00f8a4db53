package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// NodeID identifies a signal, computed, or effect for instrumentation
// purposes. It is lazily assigned — constructing a node never pays the
// cost unless a hook or trace actually asks for an ID.
type NodeID = kernel.NodeID

// Hooks is the sole observability surface of the runtime. Every field is
// optional; hooks run synchronously, inline with the operation they
// describe, and must not block or re-enter the graph.
type Hooks = kernel.Hooks

// Event is one entry in a Trace ring.
type Event = kernel.Event

// Trace is a bounded per-node event history, useful for debug tooling
// that wants to explain why a particular node last recomputed.
type Trace = kernel.Trace

// SetHooks replaces the calling goroutine's runtime-wide hook set.
func SetHooks(h *Hooks) { kernel.GetRuntime().SetHooks(h) }

// EnableTrace attaches a bounded trace ring to the calling goroutine's
// runtime, chaining onto whatever hooks are already set. capacity is the
// number of nodes whose history is kept (least recently touched evicted
// first); each node keeps its latest 32 events.
func EnableTrace(capacity int) (*Trace, error) {
	return kernel.GetRuntime().EnableTrace(capacity)
}

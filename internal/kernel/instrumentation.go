package kernel

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Hooks is the sole observability surface of the kernel. Every field is
// optional; a nil hook is simply not called. Hooks run synchronously on
// the calling goroutine, inline with the operation they describe — they
// MUST NOT block or re-enter the runtime.
type Hooks struct {
	OnDependencyTracked func(producer, consumer NodeID)
	OnDependencyPruned  func(producer, consumer NodeID)
	OnPropagateBegin    func(root NodeID)
	OnPropagateEnd      func(root NodeID)
	OnRecompute         func(node NodeID)

	// OnComputeError / OnEffectError / OnListenerError override the default
	// slog-based reporting for their respective error kinds. Returning
	// leaves the node state transition untouched; these are notification
	// only, not recovery hooks.
	OnComputeError  func(*ComputeError)
	OnEffectError   func(*EffectError)
	OnListenerError func(*ListenerError)
}

func (h *Hooks) dependencyTracked(producer, consumer *node) {
	if h == nil || h.OnDependencyTracked == nil {
		return
	}
	h.OnDependencyTracked(producer.ID(), consumer.ID())
}

func (h *Hooks) dependencyPruned(producer, consumer *node) {
	if h == nil || h.OnDependencyPruned == nil {
		return
	}
	h.OnDependencyPruned(producer.ID(), consumer.ID())
}

func (h *Hooks) propagateBegin(root *node) {
	if h == nil || h.OnPropagateBegin == nil {
		return
	}
	h.OnPropagateBegin(root.ID())
}

func (h *Hooks) propagateEnd(root *node) {
	if h == nil || h.OnPropagateEnd == nil {
		return
	}
	h.OnPropagateEnd(root.ID())
}

func (h *Hooks) recompute(n *node) {
	if h == nil || h.OnRecompute == nil {
		return
	}
	h.OnRecompute(n.ID())
}

func (h *Hooks) computeError(e *ComputeError) {
	if h != nil && h.OnComputeError != nil {
		h.OnComputeError(e)
		return
	}
	slog.Error("pulse: compute error", "node_id", e.NodeID, "err", e.Err)
}

func (h *Hooks) effectError(e *EffectError) {
	if h != nil && h.OnEffectError != nil {
		h.OnEffectError(e)
		return
	}
	slog.Error("pulse: effect error", "node_id", e.NodeID, "err", e.Err)
}

func (h *Hooks) listenerError(e *ListenerError) {
	if h != nil && h.OnListenerError != nil {
		h.OnListenerError(e)
		return
	}
	slog.Error("pulse: listener error", "node_id", e.NodeID, "err", e.Err)
}

// Event is one entry in a runtime's trace ring, used only by diagnostic
// tooling (cmd/pulsedemo) — never consulted by the kernel itself.
type Event struct {
	Kind string // "tracked", "pruned", "recompute"
	Node NodeID
}

// Trace is a bounded, LRU-evicted per-node event history. It is a debug
// convenience: losing old entries under load is fine, unlike losing a
// dependency edge. Disabled (nil) unless explicitly attached to a Runtime.
type Trace struct {
	cache *lru.Cache[NodeID, []Event]
	cap   int
}

// NewTrace creates a trace ring holding up to capacity nodes worth of
// recent-event history, evicting the least-recently-touched node first.
func NewTrace(capacity int) (*Trace, error) {
	cache, err := lru.New[NodeID, []Event](capacity)
	if err != nil {
		return nil, err
	}
	return &Trace{cache: cache, cap: 32}, nil
}

func (t *Trace) record(id NodeID, ev Event) {
	if t == nil {
		return
	}
	events, _ := t.cache.Get(id)
	events = append(events, ev)
	if len(events) > t.cap {
		events = events[len(events)-t.cap:]
	}
	t.cache.Add(id, events)
}

// Recent returns the most recent events recorded for a node, oldest first.
func (t *Trace) Recent(id NodeID) []Event {
	if t == nil {
		return nil
	}
	events, _ := t.cache.Get(id)
	return events
}

// AttachTo wires this trace into a runtime's hook set, chaining any hooks
// already present rather than replacing them.
func (t *Trace) AttachTo(h *Hooks) *Hooks {
	if h == nil {
		h = &Hooks{}
	}
	prevTracked, prevPruned, prevRecompute := h.OnDependencyTracked, h.OnDependencyPruned, h.OnRecompute
	h.OnDependencyTracked = func(p, c NodeID) {
		t.record(c, Event{Kind: "tracked", Node: p})
		if prevTracked != nil {
			prevTracked(p, c)
		}
	}
	h.OnDependencyPruned = func(p, c NodeID) {
		t.record(c, Event{Kind: "pruned", Node: p})
		if prevPruned != nil {
			prevPruned(p, c)
		}
	}
	h.OnRecompute = func(n NodeID) {
		t.record(n, Event{Kind: "recompute", Node: n})
		if prevRecompute != nil {
			prevRecompute(n)
		}
	}
	return h
}

package kernel

// Derived is a cached node that is both a consumer (of the producers it
// reads during compute) and a producer (for whatever reads it). It is
// created lazy — Dirty, uninitialized — and becomes Clean on first pull.
type Derived struct {
	node
	rt      *Runtime
	compute func() any
}

// NewDerived creates a derived node wrapping compute. The node is adopted
// by the runtime's current owner, so it is disposed along with it.
func (rt *Runtime) NewDerived(compute func() any, equal func(a, b any) bool) *Derived {
	d := &Derived{rt: rt, compute: compute}
	d.status = TypeDerived | StateDirty
	d.equalFn = equal
	d.recomputeFn = func() any {
		var v any
		rt.track(&d.node, func() { v = compute() })
		return v
	}
	rt.currentOwner.adopt(&d.node)
	return d
}

// Read settles the node (recomputing if Pending/Dirty, per the pull
// evaluator) and returns its cached value, recording a dependency edge if
// a consumer is currently tracking. A disposed node skips settling
// entirely — recomputeFn is gone by then — and just returns whatever
// value it last held, nil if it was disposed before ever settling.
func (d *Derived) Read() any {
	if d.status.Is(FlagDisposed) {
		return d.value
	}
	d.rt.settle(&d.node)
	d.rt.read(&d.node)
	return d.value
}

// Dispose detaches this node from the graph; see disposeNode. Further
// reads return the last settled value (or nil) rather than recomputing.
func (d *Derived) Dispose() { disposeNode(d.rt, &d.node) }

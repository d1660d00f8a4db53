package kernel

// settle implements the pull evaluator: on-demand recomputation of a
// Pending or Dirty derived node, respecting diamond ordering (every
// ancestor is fully resolved exactly once, however many descendants share
// it) and the value-equality short-circuit.
//
// The ancestor-verification walk (step 3a/3b of the algorithm) is an
// explicit stack of traversal frames rather than host recursion, so a
// long linear chain of Pending derived nodes settles without growing the
// Go call stack. Once a node is determined to actually need
// recomputation, recompute calls the user's compute function, which may
// itself call Read on further nodes — by that point every such ancestor
// has already been driven to CLEAN by this same walk, so that nested call
// resolves in O(1) rather than recursing further.
func (rt *Runtime) settle(root *node) {
	if root.status.Is(FlagComputing) {
		panic(ErrCycleDetected)
	}
	if root.status.State() == StateClean {
		return
	}

	// Every non-Clean node, Dirty or Pending, goes through the same
	// descend-then-resolve walk: a Dirty node still needs its own
	// dependencies driven to CLEAN before it recomputes (a freshly created,
	// never-pulled chain is Dirty top to bottom), it just skips the
	// value-equality check once it gets there, since DIRTY already means
	// "recompute unconditionally."
	type frame struct {
		n     *node
		phase int // 0 = descend into pending/dirty ancestors, 1 = verify & resolve
	}
	stack := []frame{{n: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := top.n

		if n.status.Is(FlagComputing) {
			panic(ErrCycleDetected)
		}

		if n.status.State() == StateClean {
			stack = stack[:len(stack)-1]
			continue
		}

		if top.phase == 0 {
			top.phase = 1
			for e := range n.dependencies() {
				p := e.producer
				if p.status.Type() == TypeDerived {
					switch p.status.State() {
					case StatePending, StateDirty:
						stack = append(stack, frame{n: p})
					}
				}
			}
			continue
		}

		// Phase 1: every ancestor reachable from n is now CLEAN.
		if n.status.State() == StateDirty {
			rt.recompute(n)
			stack = stack[:len(stack)-1]
			continue
		}

		// Pending: check whether any ancestor actually changed value since
		// n last saw it.
		changed := false
		for e := range n.dependencies() {
			if e.producer.valueVersion != e.seenValue {
				changed = true
				break
			}
		}
		if changed {
			rt.recompute(n)
		} else {
			n.status = n.status.WithState(StateClean)
		}
		stack = stack[:len(stack)-1]
	}
}

// recompute performs exactly one tracked recomputation of a derived node:
// it wraps the user compute function in track (which both records fresh
// dependencies and prunes stale ones), compares the new value against the
// cached one, and resolves the node's final status.
//
// A panic from the compute function is recovered, reported through the
// ComputeError hook (or the default slog handler), and re-raised as a
// typed *ComputeError so it still propagates to the caller of read,
// exactly as an uncaught exception would — the node is left DIRTY so the
// next read retries, and the scope-guard prune in track has already run
// via its own defer by the time this recover fires.
func (rt *Runtime) recompute(n *node) {
	n.status = n.status.WithFlag(FlagComputing)
	defer func() { n.status = n.status.WithoutFlag(FlagComputing) }()

	defer func() {
		if r := recover(); r != nil {
			n.status = n.status.WithState(StateDirty)
			ce := &ComputeError{NodeID: n.ID(), Err: asError(r)}
			rt.Hooks().computeError(ce)
			panic(ce)
		}
	}()

	newValue := n.recomputeFn()

	if n.hasValue && n.equal(n.value, newValue) {
		n.status = n.status.WithState(StateClean)
		rt.Hooks().recompute(n)
		return
	}

	n.value = newValue
	n.hasValue = true
	n.valueVersion++
	n.status = n.status.WithState(StateClean)
	rt.Hooks().recompute(n)
}

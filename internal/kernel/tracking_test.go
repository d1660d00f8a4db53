package kernel

import "testing"

func eq(a, b any) bool { return a == b }

func TestTrackDependencyReusesEdgesInStableOrder(t *testing.T) {
	rt := newRuntime()
	a := rt.NewSignal(1, eq)
	b := rt.NewSignal(2, eq)

	var d *Derived
	d = rt.NewDerived(func() any {
		return a.Read().(int) + b.Read().(int)
	}, eq)

	d.Read()
	firstEdgeA := d.node.depHead
	firstEdgeB := d.node.depHead.nextDep
	if firstEdgeA.producer != &a.node || firstEdgeB.producer != &b.node {
		t.Fatalf("expected dependency order a, b")
	}

	a.Write(10)
	d.Read()

	if d.node.depHead != firstEdgeA || d.node.depHead.nextDep != firstEdgeB {
		t.Fatalf("re-tracking in the same read order must reuse the same edge objects, not reallocate")
	}
}

func TestTrackDependencyPrunesDroppedBranch(t *testing.T) {
	rt := newRuntime()
	useA := rt.NewSignal(true, eq)
	a := rt.NewSignal("a", eq)
	b := rt.NewSignal("b", eq)

	d := rt.NewDerived(func() any {
		if useA.Read().(bool) {
			return a.Read()
		}
		return b.Read()
	}, eq)

	d.Read()
	if !hasEdgeTo(&d.node, &a.node) {
		t.Fatalf("expected a dependency edge to a while useA is true")
	}

	useA.Write(false)
	d.Read()

	if hasEdgeTo(&d.node, &a.node) {
		t.Fatalf("the branch not taken on re-evaluation must be pruned")
	}
	if !hasEdgeTo(&d.node, &b.node) {
		t.Fatalf("expected a dependency edge to b after switching branches")
	}

	// a no longer reaches d; writing it must not schedule any work for d.
	a.Write("changed")
	if d.node.status.State() != StateClean {
		t.Fatalf("writing a pruned-away dependency must not dirty the consumer")
	}
}

func hasEdgeTo(consumer, producer *node) bool {
	for e := consumer.depHead; e != nil; e = e.nextDep {
		if e.producer == producer {
			return true
		}
	}
	return false
}

func TestEdgePoolReusesDetachedEdges(t *testing.T) {
	var pool edgePool

	n1 := &node{}
	n2 := &node{}
	e := pool.get(n1, n2, 1)
	attach(e)
	detach(e)
	pool.put(e)

	reused := pool.get(n1, n2, 2)
	if reused != e {
		t.Fatalf("expected edgePool to hand back the pooled edge instead of allocating")
	}
	if reused.prevDep != nil || reused.nextDep != nil || reused.prevSub != nil || reused.nextSub != nil {
		t.Fatalf("a reused edge must start fully unlinked")
	}
}

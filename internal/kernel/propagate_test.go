package kernel

import "testing"

func TestPropagateSignalDirectOptimization(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(1, eq)

	recomputes := 0
	d := rt.NewDerived(func() any {
		recomputes++
		return count.Read().(int) * 2
	}, eq)

	if d.Read().(int) != 2 {
		t.Fatalf("expected initial value 2")
	}

	count.Write(5)
	if d.node.status.State() != StateDirty {
		t.Fatalf("a direct subscriber of a signal write must be marked DIRTY immediately, not just PENDING")
	}

	if d.Read().(int) != 10 || recomputes != 2 {
		t.Fatalf("expected exactly one recompute per changed write")
	}
}

func TestPropagateDedupesSharedDiamondAncestor(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(1, eq)

	left := rt.NewDerived(func() any { return count.Read().(int) * 2 }, eq)
	right := rt.NewDerived(func() any { return count.Read().(int) + 1 }, eq)

	sumRuns := 0
	sum := rt.NewDerived(func() any {
		sumRuns++
		return left.Read().(int) + right.Read().(int)
	}, eq)

	if sum.Read().(int) != 4 {
		t.Fatalf("expected initial sum 4")
	}

	count.Write(10)
	if sum.Read().(int) != 31 || sumRuns != 2 {
		t.Fatalf("expected sum to recompute exactly once per settle despite two paths to count")
	}
}

func TestPropagateSkipsDisposedConsumers(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(1, eq)

	runs := 0
	e := rt.NewEffect(LaneUser, func() func() {
		count.Read()
		runs++
		return nil
	}, nil)

	e.Dispose()
	count.Write(2) // must not panic or resurrect the disposed effect

	if runs != 1 {
		t.Fatalf("a disposed effect must not run again, got %d runs", runs)
	}
}

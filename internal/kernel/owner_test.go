package kernel

import "testing"

func TestOwnerDisposeCascadesChildrenFirst(t *testing.T) {
	rt := newRuntime()
	var log []string

	owner := rt.NewOwner()
	owner.Run(func() error {
		owner.OnCleanup(func() { log = append(log, "outer") })
		child := rt.NewOwner()
		child.OnCleanup(func() { log = append(log, "inner") })
		return nil
	})

	owner.Dispose()

	if len(log) != 2 || log[0] != "inner" || log[1] != "outer" {
		t.Fatalf("expected children to clean up before their parent, got %v", log)
	}
}

func TestOwnerDisposeIsIdempotent(t *testing.T) {
	rt := newRuntime()
	runs := 0
	owner := rt.NewOwner()
	owner.OnCleanup(func() { runs++ })

	owner.Dispose()
	owner.Dispose()

	if runs != 1 {
		t.Fatalf("expected exactly one cleanup run across two Dispose calls, got %d", runs)
	}
}

func TestOwnerRunOnDisposedOwnerReturnsError(t *testing.T) {
	rt := newRuntime()
	owner := rt.NewOwner()
	owner.Dispose()

	err := owner.Run(func() error { return nil })
	if err != ErrDisposedUse {
		t.Fatalf("expected ErrDisposedUse, got %v", err)
	}
}

func TestOwnerContextInheritsDownTheTree(t *testing.T) {
	rt := newRuntime()
	type key struct{}

	owner := rt.NewOwner()
	owner.Run(func() error {
		owner.setContext(key{}, 42)

		child := rt.NewOwner()
		var seen any
		child.Run(func() error {
			v, ok := child.getContext(key{})
			if !ok {
				t.Fatalf("expected the child to inherit the parent's context value")
			}
			seen = v
			return nil
		})
		if seen != 42 {
			t.Fatalf("expected 42, got %v", seen)
		}
		return nil
	})
}

func TestOwnerErrorCatcherInterceptsPanic(t *testing.T) {
	rt := newRuntime()
	owner := rt.NewOwner()

	var caught any
	owner.OnError(func(r any) { caught = r })

	err := owner.Run(func() error {
		panic("boom")
	})

	if err == nil {
		t.Fatalf("expected Run to return a non-nil error once a catcher handled the panic")
	}
	if caught != "boom" {
		t.Fatalf("expected the catcher to observe the panic value, got %v", caught)
	}
}

func TestDisposeNodeDetachesDependencyEdges(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(1, eq)
	d := rt.NewDerived(func() any { return count.Read().(int) + 1 }, eq)
	d.Read()

	if count.node.subHead == nil {
		t.Fatalf("expected count to have a subscriber edge before dispose")
	}

	d.Dispose()

	if count.node.subHead != nil {
		t.Fatalf("disposing a consumer must detach its dependency edges from its producers")
	}
	if !d.node.status.Is(FlagDisposed) {
		t.Fatalf("expected the node to carry FlagDisposed after Dispose")
	}
}

func TestDisposedDerivedReadReturnsLastValueWithoutRecomputing(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(1, eq)
	d := rt.NewDerived(func() any { return count.Read().(int) + 1 }, eq)
	d.Read() // settles at 2

	d.Dispose()
	count.Write(5) // must not be observed; recomputeFn is already gone

	if v := d.Read(); v != 2 {
		t.Fatalf("expected a disposed-but-settled node to keep returning its last value 2, got %v", v)
	}
}

func TestDisposedDerivedNeverSettledReadReturnsNil(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(1, eq)
	d := rt.NewDerived(func() any { return count.Read().(int) + 1 }, eq)

	d.Dispose() // disposed while still Dirty/never pulled

	if v := d.Read(); v != nil {
		t.Fatalf("expected a disposed-before-settling node to read as nil, got %v", v)
	}
}

package kernel

import "testing"

func TestSchedulerDefersEffectsUntilBatchExits(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(0, eq)
	runs := 0

	rt.NewEffect(LaneUser, func() func() {
		count.Read()
		runs++
		return nil
	}, nil)

	if runs != 1 {
		t.Fatalf("expected the initial synchronous run, got %d", runs)
	}

	rt.scheduler.batch(func() {
		count.Write(1)
		count.Write(2)
		count.Write(3)
		if runs != 1 {
			t.Fatalf("an effect must not run before the batch exits, got %d runs mid-batch", runs)
		}
	})

	if runs != 2 {
		t.Fatalf("expected exactly one run after the batch flushed, got %d", runs)
	}
}

func TestSchedulerDrainsRenderLaneBeforeUserLane(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(0, eq)
	var order []string

	rt.NewEffect(LaneUser, func() func() {
		count.Read()
		order = append(order, "user")
		return nil
	}, nil)
	rt.NewEffect(LaneRender, func() func() {
		count.Read()
		order = append(order, "render")
		return nil
	}, nil)

	order = nil
	count.Write(1)

	if len(order) != 2 || order[0] != "render" || order[1] != "user" {
		t.Fatalf("expected [render user], got %v", order)
	}
}

func TestOnSettledFiresImmediatelyWhenIdle(t *testing.T) {
	rt := newRuntime()
	fired := false
	rt.scheduler.OnSettled(func() { fired = true })
	if !fired {
		t.Fatalf("OnSettled must fire immediately when nothing is pending")
	}
}

func TestOnSettledWaitsForPendingFlush(t *testing.T) {
	rt := newRuntime()
	count := rt.NewSignal(0, eq)

	rt.NewEffect(LaneUser, func() func() {
		count.Read()
		return nil
	}, nil)

	fired := false
	rt.scheduler.batch(func() {
		count.Write(1)
		rt.scheduler.OnSettled(func() { fired = true })
		if fired {
			t.Fatalf("OnSettled must not fire before the batch's flush")
		}
	})

	if !fired {
		t.Fatalf("expected OnSettled to fire once the flush drained")
	}
}

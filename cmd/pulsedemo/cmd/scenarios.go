package cmd

import (
	"fmt"

	"github.com/pulsegraph/pulse"
	"github.com/pulsegraph/pulse/cmd/pulsedemo/internal/render"
)

func runScenario(name string) error {
	if name == "all" {
		for _, s := range []string{"counter", "diamond", "dynamic", "batch", "listener", "cycle"} {
			if err := runScenario(s); err != nil {
				return err
			}
		}
		return nil
	}

	scenarios := map[string]func(*pulse.Trace){
		"counter":  counterScenario,
		"diamond":  diamondScenario,
		"dynamic":  dynamicScenario,
		"batch":    batchScenario,
		"listener": listenerScenario,
		"cycle":    cycleScenario,
	}

	run, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("pulsedemo: unknown scenario %q", name)
	}
	run(setupRuntime())
	return nil
}

func counterScenario(trace *pulse.Trace) {
	render.Scenario("Counter")

	count := pulse.NewSignal(0)
	render.Step("initial read: %s", render.Value(count.Read()))

	count.Write(10)
	render.Step("after Write(10): %s", render.Value(count.Read()))
}

func diamondScenario(trace *pulse.Trace) {
	render.Scenario("Diamond dependency")

	count := pulse.NewSignal(1)
	left := pulse.NewComputed(func() int {
		render.Step("recomputing left = count * 2")
		return count.Read() * 2
	})
	right := pulse.NewComputed(func() int {
		render.Step("recomputing right = count + 1")
		return count.Read() + 1
	})
	sum := pulse.NewComputed(func() int {
		render.Step("recomputing sum = left + right")
		return left.Read() + right.Read()
	})

	render.Step("sum = %s", render.Value(sum.Read()))

	render.Step("writing count = 10 (left and right share this ancestor)")
	count.Write(10)
	render.Step("sum = %s (sum recomputed exactly once, not twice)", render.Value(sum.Read()))

	render.TraceEvents(trace, sum.ID())
}

func dynamicScenario(trace *pulse.Trace) {
	render.Scenario("Dynamic dependency pruning")

	useA := pulse.NewSignal(true)
	a := pulse.NewSignal("a1")
	b := pulse.NewSignal("b1")

	pulse.NewEffect(func() func() {
		if useA.Read() {
			render.Step("effect reading a: %s", render.Value(a.Read()))
		} else {
			render.Step("effect reading b: %s", render.Value(b.Read()))
		}
		return nil
	})

	render.Step("switching to branch b")
	useA.Write(false)

	render.Step("writing a (no longer tracked — the effect must NOT rerun)")
	a.Write("a2")

	render.Step("writing b (tracked — the effect reruns)")
	b.Write("b2")
}

func batchScenario(trace *pulse.Trace) {
	render.Scenario("Batched effect")

	count := pulse.NewSignal(0)
	pulse.NewEffect(func() func() {
		render.Step("effect observes count = %s", render.Value(count.Read()))
		return nil
	})

	render.Step("batching three writes")
	pulse.Batch(func() {
		count.Write(1)
		count.Write(2)
		count.Write(3)
	})
	render.Step("the effect above ran exactly once for all three writes")
}

func listenerScenario(trace *pulse.Trace) {
	render.Scenario("Listener isolation")

	count := pulse.NewSignal(0)
	count.Subscribe(func(v int) {
		panic("a broken listener")
	})
	count.Subscribe(func(v int) {
		render.Step("well-behaved listener observed %s", render.Value(v))
	})

	render.Step("writing 5 (one listener panics, the other still runs)")
	count.Write(5)
}

func cycleScenario(trace *pulse.Trace) {
	render.Scenario("Cycle detection")

	var b *pulse.Computed[int]
	a := pulse.NewComputed(func() int {
		return b.Read() + 1
	})
	b = pulse.NewComputed(func() int {
		return a.Read() + 1
	})

	func() {
		defer func() {
			if r := recover(); r != nil {
				render.Error("settle", fmt.Errorf("%v", r))
			}
		}()
		a.Read()
	}()
}

package kernel

import (
	"sync"

	"github.com/petermattis/goid"
)

// Runtime is one isolated reactive graph instance: its own tracking
// context, scheduler, edge pool, and owner tree. Every goroutine gets its
// own Runtime automatically (see GetRuntime), satisfying the
// confinement requirement without a process-wide mutex serializing
// unrelated goroutines against each other.
type Runtime struct {
	pool edgePool

	current *node // current consumer, i.e. the tracking-context slot
	tracked bool  // false while untracked, even if current != nil

	scheduler *Scheduler

	hooks *Hooks
	trace *Trace

	root        *Owner
	currentOwner *Owner
}

func newRuntime() *Runtime {
	rt := &Runtime{}
	rt.scheduler = newScheduler(rt)
	rt.root = newOwner(rt, nil)
	rt.currentOwner = rt.root
	return rt
}

// Hooks returns the runtime's instrumentation hook set, lazily allocating
// one if none has been set yet.
func (rt *Runtime) Hooks() *Hooks {
	if rt.hooks == nil {
		rt.hooks = &Hooks{}
	}
	return rt.hooks
}

// SetHooks replaces the runtime's instrumentation hook set wholesale.
func (rt *Runtime) SetHooks(h *Hooks) { rt.hooks = h }

// EnableTrace attaches a bounded trace ring of the given capacity to this
// runtime's hooks, for diagnostic tooling.
func (rt *Runtime) EnableTrace(capacity int) (*Trace, error) {
	t, err := NewTrace(capacity)
	if err != nil {
		return nil, err
	}
	rt.trace = t
	rt.hooks = t.AttachTo(rt.Hooks())
	return t, nil
}

func (rt *Runtime) Trace() *Trace { return rt.trace }

// Root returns the runtime's root owner, the ancestor of every Owner
// created without an explicit parent.
func (rt *Runtime) Root() *Owner { return rt.root }

// Scheduler returns the runtime's scheduler (batching, effect queues).
func (rt *Runtime) Scheduler() *Scheduler { return rt.scheduler }

// CurrentOwner returns the owner whose Run is currently on top of the
// owner stack (the root owner if none).
func (rt *Runtime) CurrentOwner() *Owner { return rt.currentOwner }

// Batch defers effect execution until f returns, per §4.7.
func (rt *Runtime) Batch(f func()) { rt.scheduler.batch(f) }

// OnCleanup registers f against the current owner.
func (rt *Runtime) OnCleanup(f func()) { rt.currentOwner.OnCleanup(f) }

// SetContext / GetContext back Context[T]'s inheritance search.
func (rt *Runtime) SetContext(key, value any) { rt.currentOwner.setContext(key, value) }
func (rt *Runtime) GetContext(key any) (any, bool) { return rt.currentOwner.getContext(key) }


var runtimes sync.Map // goid int64 -> *Runtime

// GetRuntime returns the calling goroutine's Runtime, creating it on
// first use. Each goroutine is isolated from every other's graph.
func GetRuntime() *Runtime {
	gid := goid.Get()
	if v, ok := runtimes.Load(gid); ok {
		return v.(*Runtime)
	}
	rt := newRuntime()
	runtimes.Store(gid, rt)
	return rt
}

package kernel

// Effect lanes determine drain order within a flush: render effects
// before user effects. This is a supplement to the spec's single FIFO —
// it costs nothing beyond a second queue, since the scheduler already has
// a well-defined drain point.
const (
	LaneRender int8 = iota
	LaneUser
)

// FlushStrategy decides when a settled effect body actually runs. It
// receives the already-wired run function and must invoke it exactly
// once; it must not run a disposed effect (run checks DISPOSED itself, so
// a strategy that defers past disposal is still safe).
type FlushStrategy func(run func())

// SyncStrategy is the core-supplied default: it calls run immediately,
// synchronously, from within the draining scheduler.
func SyncStrategy(run func()) { run() }

// Scheduler holds batchDepth and the pending-effect queues described in
// §4.7: enqueueEffect/startBatch/endBatch/batch implement that contract
// directly.
type Scheduler struct {
	rt *Runtime

	batchDepth int
	flushing   bool

	renderQueue []*node
	userQueue   []*node

	onRenderSettled []func()
	onUserSettled   []func()
	onSettled       []func()
}

func newScheduler(rt *Runtime) *Scheduler { return &Scheduler{rt: rt} }

// enqueueEffect appends n to its lane's queue; propagate has already set
// FlagScheduled and skips effects that carry it. Outside a batch, it
// flushes immediately.
func (s *Scheduler) enqueueEffect(n *node) {
	if n.lane == LaneRender {
		s.renderQueue = append(s.renderQueue, n)
	} else {
		s.userQueue = append(s.userQueue, n)
	}
	if s.batchDepth == 0 {
		s.flush()
	}
}

func (s *Scheduler) startBatch() { s.batchDepth++ }

func (s *Scheduler) endBatch() {
	s.batchDepth--
	if s.batchDepth == 0 {
		s.flush()
	}
}

func (s *Scheduler) batch(f func()) {
	s.startBatch()
	defer s.endBatch()
	f()
}

// flush drains both lanes, render before user, repeating until neither
// has work (running an effect may enqueue more), then fires the settled
// barriers registered via OnRenderSettled/OnUserSettled/OnSettled.
func (s *Scheduler) flush() {
	if s.flushing {
		return
	}
	s.flushing = true
	defer func() { s.flushing = false }()

	for len(s.renderQueue) > 0 || len(s.userQueue) > 0 {
		for len(s.renderQueue) > 0 {
			n := s.renderQueue[0]
			s.renderQueue = s.renderQueue[1:]
			s.runEffect(n)
		}
		s.fireOnce(&s.onRenderSettled)

		for len(s.userQueue) > 0 {
			n := s.userQueue[0]
			s.userQueue = s.userQueue[1:]
			s.runEffect(n)
		}
		s.fireOnce(&s.onUserSettled)
	}
	s.fireOnce(&s.onSettled)
}

func (s *Scheduler) fireOnce(cbs *[]func()) {
	pending := *cbs
	*cbs = nil
	for _, cb := range pending {
		cb()
	}
}

func (s *Scheduler) runEffect(n *node) {
	if n.status.Is(FlagDisposed) {
		n.status = n.status.WithoutFlag(FlagScheduled)
		return
	}
	strategy := n.strategy
	if strategy == nil {
		strategy = SyncStrategy
	}
	strategy(func() {
		if n.status.Is(FlagDisposed) {
			return
		}
		n.status = n.status.WithoutFlag(FlagScheduled).WithState(StateClean)
		s.rt.runEffectBody(n)
	})
}

// onRenderSettled/onUserSettled/onSettled register one-shot barrier
// callbacks. If nothing is in flight and the relevant queue is already
// empty, the callback fires immediately — there is no flush to wait for.
func (s *Scheduler) OnRenderSettled(f func()) {
	if !s.flushing && len(s.renderQueue) == 0 {
		f()
		return
	}
	s.onRenderSettled = append(s.onRenderSettled, f)
}

func (s *Scheduler) OnUserSettled(f func()) {
	if !s.flushing && len(s.userQueue) == 0 {
		f()
		return
	}
	s.onUserSettled = append(s.onUserSettled, f)
}

func (s *Scheduler) OnSettled(f func()) {
	if !s.flushing && len(s.renderQueue) == 0 && len(s.userQueue) == 0 {
		f()
		return
	}
	s.onSettled = append(s.onSettled, f)
}

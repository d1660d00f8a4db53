package kernel

// shouldTrack reports whether a read right now should register a
// dependency edge: there must be a current consumer, and we must not be
// inside an Untrack scope.
func (rt *Runtime) shouldTrack() bool {
	return rt.tracked && rt.current != nil
}

// track implements the dependency-tracker contract for a tracked
// evaluation of consumer. Steps 4–5 (restore + prune) run via defer, so
// they execute even if f panics; the panic still propagates to the
// caller.
func (rt *Runtime) track(consumer *node, f func()) {
	prevCurrent, prevTracked := rt.current, rt.tracked
	rt.current = consumer
	rt.tracked = true

	consumer.trackingVersion++
	consumer.depTail = nil // walks the existing list as reads re-confirm it

	defer func() {
		rt.current, rt.tracked = prevCurrent, prevTracked
		rt.prune(consumer)
	}()

	f()
}

// prune detaches every dependency edge after consumer.depTail — the
// portion of the list that was not re-confirmed during the run that just
// completed (or the whole list, if depTail is nil because nothing was
// read).
func (rt *Runtime) prune(consumer *node) {
	var start *edge
	if consumer.depTail != nil {
		start = consumer.depTail.nextDep
	} else {
		start = consumer.depHead
	}
	for e := start; e != nil; {
		next := e.nextDep
		detach(e)
		rt.Hooks().dependencyPruned(e.producer, e.consumer)
		rt.pool.put(e)
		e = next
	}
}

// trackDependency records (or refreshes) the edge between producer and
// consumer during a tracked evaluation. It implements the two-pointer
// walk: the common case of reads happening in the same order as last run
// costs O(1) per read with no allocation.
func (rt *Runtime) trackDependency(producer, consumer *node) {
	version := consumer.trackingVersion

	if tail := consumer.depTail; tail != nil && tail.producer == producer {
		tail.version = version
		tail.seenValue = producer.valueVersion
		return
	}

	var next *edge
	if consumer.depTail != nil {
		next = consumer.depTail.nextDep
	} else {
		next = consumer.depHead
	}
	if next != nil && next.producer == producer {
		next.version = version
		next.seenValue = producer.valueVersion
		consumer.depTail = next
		return
	}

	e := rt.pool.get(producer, consumer, version)
	e.seenValue = producer.valueVersion
	attach(e)
	consumer.depTail = e
	rt.Hooks().dependencyTracked(producer, consumer)
}

// Untrack runs f with the tracking-context slot suspended: reads inside f
// do not register dependency edges, regardless of the ambient consumer.
func (rt *Runtime) Untrack(f func()) {
	prevTracked := rt.tracked
	rt.tracked = false
	defer func() { rt.tracked = prevTracked }()
	f()
}

// read is called by every producer-like node on Read(); it registers a
// dependency edge against the current consumer, if tracking.
func (rt *Runtime) read(producer *node) {
	if rt.shouldTrack() {
		rt.trackDependency(producer, rt.current)
	}
}

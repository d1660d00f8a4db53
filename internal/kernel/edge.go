package kernel

// edge is one (producer, consumer) dependency record. It participates in
// two doubly-linked lists at once: the producer's subscriber list and the
// consumer's dependency list.
type edge struct {
	producer *node
	consumer *node

	prevDep, nextDep *edge
	prevSub, nextSub *edge

	// version is the consumer's trackingVersion at the moment this edge was
	// last observed during that consumer's tracked evaluation. An edge
	// whose version trails the consumer's current trackingVersion is stale.
	version uint64

	// seenValue is the producer's valueVersion as of the last time this
	// edge was traversed (created or refreshed) during tracking. A
	// consumer's settle pass compares this against the producer's live
	// valueVersion to decide whether that ancestor changed.
	seenValue uint64
}

// edgePool is a free list of detached edges. Edges are short-lived and
// pooling them keeps dynamic-dependency workloads (conditional branches
// that re-track every run) from hammering the allocator. A pooled edge is
// always fully re-initialized before reuse (see get).
type edgePool struct {
	free *edge
}

func (p *edgePool) get(producer, consumer *node, version uint64) *edge {
	e := p.free
	if e == nil {
		return &edge{producer: producer, consumer: consumer, version: version}
	}
	p.free = e.nextDep
	*e = edge{producer: producer, consumer: consumer, version: version}
	return e
}

func (p *edgePool) put(e *edge) {
	*e = edge{nextDep: p.free}
	p.free = e
}

// attach appends e to the producer's subscriber list and inserts it into
// the consumer's dependency list right after depTail (at the head if
// depTail is nil), keeping any edges that followed so prune can still
// reach them. O(1).
func attach(e *edge) {
	p := e.producer
	if p.subTail == nil {
		p.subHead, p.subTail = e, e
	} else {
		e.prevSub = p.subTail
		p.subTail.nextSub = e
		p.subTail = e
	}

	c := e.consumer
	var next *edge
	if c.depTail == nil {
		next = c.depHead
		c.depHead = e
	} else {
		next = c.depTail.nextDep
		e.prevDep = c.depTail
		c.depTail.nextDep = e
	}
	e.nextDep = next
	if next != nil {
		next.prevDep = e
	}
	c.depTail = e
}

// detach unlinks e from both of its lists. O(1). Does not return e to any
// pool; callers that want pooling call edgePool.put afterward.
func detach(e *edge) {
	p := e.producer
	if e.prevSub != nil {
		e.prevSub.nextSub = e.nextSub
	} else {
		p.subHead = e.nextSub
	}
	if e.nextSub != nil {
		e.nextSub.prevSub = e.prevSub
	} else {
		p.subTail = e.prevSub
	}

	c := e.consumer
	if e.prevDep != nil {
		e.prevDep.nextDep = e.nextDep
	} else {
		c.depHead = e.nextDep
	}
	if e.nextDep != nil {
		e.nextDep.prevDep = e.prevDep
	} else {
		c.depTail = e.prevDep
	}

	e.prevSub, e.nextSub, e.prevDep, e.nextDep = nil, nil, nil, nil
}

package kernel

import (
	"iter"

	"github.com/google/uuid"
)

// NodeID names a node for instrumentation purposes only; it is never
// consulted on the hot path and is assigned lazily.
type NodeID = uuid.UUID

// node is the intrusive base shared by signals, derived nodes, and
// effects. It owns both ends of the edge lists: subHead/subTail for edges
// where this node is the producer, depHead/depTail for edges where this
// node is the consumer.
type node struct {
	id    NodeID
	hasID bool

	status Status

	subHead, subTail *edge
	depHead, depTail *edge

	// trackingVersion is bumped every time this node (as a consumer) begins
	// a tracked evaluation. Only meaningful for derived nodes and effects.
	trackingVersion uint64

	// valueVersion is bumped every time this node's cached value (as a
	// producer) is observed to actually change — on a signal write that
	// compares unequal, or a derived recompute that compares unequal. A
	// consumer's settle pass compares a dependency edge's recorded
	// seenValue against the producer's current valueVersion to decide
	// whether that ancestor's change requires recomputation, which is this
	// implementation's resolution of the "set DIRTY so subscribers can
	// short-circuit, then transition to CLEAN" wording in the spec: rather
	// than a status bit that would already have been cleared by the time a
	// waiting consumer inspects it, the change is recorded as a version
	// bump that survives the ancestor's own transition back to CLEAN.
	valueVersion uint64

	value    any
	hasValue bool
	equalFn  func(a, b any) bool

	// recomputeFn performs one tracked recomputation; only set for derived
	// nodes. runFn performs one effect run, returning this run's cleanup
	// (or nil); only set for effects.
	recomputeFn func() any
	runFn       func() (cleanup func())

	cleanup func() // effect's cleanup from its last run

	lane     int8
	strategy FlushStrategy

	owner *Owner // the Owner created to scope this effect's own runs

	label string // optional, instrumentation/debugging only
}

func (n *node) equal(a, b any) bool {
	if n.equalFn != nil {
		return n.equalFn(a, b)
	}
	return a == b
}

// ID lazily assigns and returns this node's identity.
func (n *node) ID() NodeID {
	if !n.hasID {
		n.id = uuid.New()
		n.hasID = true
	}
	return n.id
}

func (n *node) subscribers() iter.Seq[*edge] {
	return func(yield func(*edge) bool) {
		for e := n.subHead; e != nil; {
			next := e.nextSub
			if !yield(e) {
				return
			}
			e = next
		}
	}
}

func (n *node) dependencies() iter.Seq[*edge] {
	return func(yield func(*edge) bool) {
		for e := n.depHead; e != nil; {
			next := e.nextDep
			if !yield(e) {
				return
			}
			e = next
		}
	}
}

func (n *node) hasSubscribers() bool { return n.subHead != nil }

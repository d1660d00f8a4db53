package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// Computed is a cached value derived from other signals/computeds. It is
// lazy (nothing computes until first Read) and recomputes at most once
// per settle, short-circuiting propagation to its own subscribers when
// the recomputed value compares equal to the cached one. T is
// constrained to comparable for the same reason as Signal: the default
// equality short-circuit is Go's ==.
type Computed[T comparable] struct {
	derived *kernel.Derived
}

type computedOptions[T comparable] struct {
	equal func(a, b T) bool
}

// ComputedOption configures a Computed at construction time.
type ComputedOption[T comparable] func(*computedOptions[T])

// WithComputedEqual installs a custom equality predicate for this
// computed's short-circuit check.
func WithComputedEqual[T comparable](eq func(a, b T) bool) ComputedOption[T] {
	return func(o *computedOptions[T]) { o.equal = eq }
}

// NewComputed creates a computed signal deriving its value from compute.
func NewComputed[T comparable](compute func() T, opts ...ComputedOption[T]) *Computed[T] {
	var o computedOptions[T]
	for _, opt := range opts {
		opt(&o)
	}
	rt := kernel.GetRuntime()
	return &Computed[T]{
		derived: rt.NewDerived(func() any { return compute() }, wrapEqual(o.equal)),
	}
}

// ID returns this computed's instrumentation identity, lazily assigning
// one on first call.
func (c *Computed[T]) ID() NodeID { return c.derived.ID() }

// Read settles and returns the current value, tracking a dependency if
// called from within a tracked evaluation.
func (c *Computed[T]) Read() T { return as[T](c.derived.Read()) }

// Dispose detaches this computed from the graph. Further reads return
// the last value it held rather than recomputing (the zero value of T if
// it was disposed before ever settling); in practice a disposed computed
// should simply be dropped.
func (c *Computed[T]) Dispose() { c.derived.Dispose() }

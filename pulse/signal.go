package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// Signal is your typical read/write reactive value. T is constrained to
// comparable so the default equality short-circuit (Go's ==) is a
// compile-time guarantee rather than a runtime panic on a boxed slice,
// map, or func; WithEqual overrides the comparison itself but does not
// lift the constraint.
type Signal[T comparable] struct {
	signal *kernel.Signal
}

type signalOptions[T comparable] struct {
	equal func(a, b T) bool
}

// SignalOption configures a Signal at construction time.
type SignalOption[T comparable] func(*signalOptions[T])

// WithEqual installs a custom equality predicate used to short-circuit
// writes that don't actually change the value. Equality is identity by
// default; this makes any other notion explicit and opt-in.
func WithEqual[T comparable](eq func(a, b T) bool) SignalOption[T] {
	return func(o *signalOptions[T]) { o.equal = eq }
}

// NewSignal creates a signal with an initial value.
func NewSignal[T comparable](initial T, opts ...SignalOption[T]) *Signal[T] {
	var o signalOptions[T]
	for _, opt := range opts {
		opt(&o)
	}
	return &Signal[T]{
		signal: kernel.GetRuntime().NewSignal(initial, wrapEqual(o.equal)),
	}
}

// ID returns this signal's instrumentation identity, lazily assigning one
// on first call.
func (s *Signal[T]) ID() NodeID { return s.signal.ID() }

// Read returns the current value, tracking a dependency if called from
// within a tracked evaluation (a Computed's compute or an Effect's run).
func (s *Signal[T]) Read() T { return as[T](s.signal.Read()) }

// Write sets a new value. A write that compares equal to the current
// value is a no-op.
func (s *Signal[T]) Write(v T) { s.signal.Write(v) }

// Update reads, transforms, and writes back the value.
func (s *Signal[T]) Update(f func(T) T) {
	s.signal.Update(func(v any) any { return f(as[T](v)) })
}

// Subscribe registers a plain listener called with the new value whenever
// a write actually changes it, independent of the tracked dependency
// graph. The returned function unsubscribes it. A panicking listener is
// isolated: the remaining listeners still run, and the error is reported
// through the runtime's ListenerError hook.
func (s *Signal[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return s.signal.Subscribe(func(v any) { fn(as[T](v)) })
}

package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// Effect is a terminal consumer: run fires once immediately, then again
// whenever its tracked dependencies invalidate. run may return a cleanup
// function, invoked before the next run and on Dispose.
type Effect struct {
	effect *kernel.Effect
}

type effectOptions struct {
	strategy FlushStrategy
}

// EffectOption configures an Effect at construction time.
type EffectOption func(*effectOptions)

// WithStrategy installs a custom flush strategy for this effect, in
// place of the synchronous default.
func WithStrategy(s FlushStrategy) EffectOption {
	return func(o *effectOptions) { o.strategy = s }
}

// NewEffect creates and immediately runs an ordinary (user-lane) effect.
func NewEffect(run func() func(), opts ...EffectOption) *Effect {
	return newEffect(kernel.LaneUser, run, opts)
}

// NewRenderEffect creates and immediately runs a render-lane effect.
// Render-lane effects drain before user-lane effects within a flush, the
// same priority split the teacher implementation uses to let UI-patching
// effects settle before ordinary side effects observe the result.
func NewRenderEffect(run func() func(), opts ...EffectOption) *Effect {
	return newEffect(kernel.LaneRender, run, opts)
}

func newEffect(lane int8, run func() func(), opts []EffectOption) *Effect {
	var o effectOptions
	for _, opt := range opts {
		opt(&o)
	}
	rt := kernel.GetRuntime()
	return &Effect{effect: rt.NewEffect(lane, run, o.strategy)}
}

// Dispose cancels the effect: it will not run again, and its most recent
// cleanup (if any) runs now.
func (e *Effect) Dispose() { e.effect.Dispose() }

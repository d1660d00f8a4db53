package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// Owner groups the lifetime of signals, computeds, effects, and nested
// owners created while it is current. Disposing it cascades to every
// child owner and owned node before running its own cleanups.
type Owner struct {
	owner *kernel.Owner
}

// NewOwner creates a child owner of whichever owner is current on this
// goroutine (the runtime root, if none).
func NewOwner() *Owner {
	return &Owner{owner: kernel.GetRuntime().NewOwner()}
}

// Run executes f with this owner current, so that signals, computeds,
// and effects created inside it are owned by it. A panic inside f is
// dispatched to this owner's error catchers (see OnError); with none
// registered it propagates to the caller.
func (o *Owner) Run(f func() error) error { return o.owner.Run(f) }

// OnCleanup registers a function to run once, when this owner is
// disposed.
func (o *Owner) OnCleanup(f func()) { o.owner.OnCleanup(f) }

// OnDispose is an alias for OnCleanup.
func (o *Owner) OnDispose(f func()) { o.owner.OnDispose(f) }

// OnError registers a panic catcher invoked when Run's f panics.
func (o *Owner) OnError(f func(any)) { o.owner.OnError(f) }

// Dispose tears down this owner: children first, then its own nodes,
// then its own cleanups in reverse registration order. A second call is
// a no-op.
func (o *Owner) Dispose() { o.owner.Dispose() }

// OnCleanup registers a cleanup on the goroutine's current owner,
// without needing a reference to it. Typically called from inside a
// Computed's compute or an Effect's run.
func OnCleanup(f func()) { kernel.GetRuntime().OnCleanup(f) }

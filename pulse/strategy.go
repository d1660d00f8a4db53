package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// FlushStrategy decides when a settled effect body actually runs. It
// receives the already pull-settled run function and must invoke it
// exactly once. Core ships only the synchronous default; async
// strategies (microtask, animation frame, debounce) are external
// collaborators built on this same contract.
type FlushStrategy = kernel.FlushStrategy

// SyncStrategy runs the effect body immediately, synchronously, as part
// of the draining flush. This is the default for every effect that
// doesn't specify one.
var SyncStrategy FlushStrategy = kernel.SyncStrategy

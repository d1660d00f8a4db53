// Package pulse is the public, ergonomic surface over the reactive
// kernel in internal/kernel: generic Signal/Computed/Effect handles, an
// owner-based lifecycle, batching, and untracking. The kernel itself
// never deals in generics — it operates on `any` — so every public type
// here is a thin, type-safe wrapper around a kernel node.
package pulse

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

func wrapEqual[T any](eq func(a, b T) bool) func(a, b any) bool {
	if eq == nil {
		return nil
	}
	return func(a, b any) bool { return eq(as[T](a), as[T](b)) }
}

package pulse

import "github.com/pulsegraph/pulse/internal/kernel"

// Context[T] carries a value down the owner tree without threading it
// through every constructor. A value set on a descendant owner shadows
// one set on an ancestor; a goroutine with no owner set at all sees the
// context's default.
type Context[T any] struct {
	key          *int
	defaultValue T
}

// NewContext creates a context identified by its own private key (a
// pointer, so it can never collide with another Context's key) carrying
// defaultValue until Provide is called somewhere in the owner chain.
func NewContext[T any](defaultValue T) *Context[T] {
	return &Context[T]{key: new(int), defaultValue: defaultValue}
}

// Provide sets this context's value on the goroutine's current owner,
// visible to it and to every owner created beneath it until shadowed by
// a nested Provide.
func (c *Context[T]) Provide(value T) {
	kernel.GetRuntime().SetContext(c.key, value)
}

// Read returns the nearest provided value walking up from the current
// owner, or the context's default if none was ever provided.
func (c *Context[T]) Read() T {
	if v, ok := kernel.GetRuntime().GetContext(c.key); ok {
		return v.(T)
	}
	return c.defaultValue
}

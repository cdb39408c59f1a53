package builder

import "context"

// Builder assembles a T step by step and hands it out once complete.
type Builder[T any] interface {
	Build(ctx context.Context) (T, error)
}

// The BuilderFunc type is an adapter to allow the use of ordinary functions as Builder.
// If f is a function with the appropriate signature, BuilderFunc(f) is a Builder that calls f.
type BuilderFunc[T any] func(ctx context.Context) (T, error)

// Build calls f(ctx).
func (f BuilderFunc[T]) Build(ctx context.Context) (T, error) {
	return f(ctx)
}

package params

import "context"

// EventCallback is a two-way binding sink handed to a component as a
// parameter. The zero value is unbound.
type EventCallback[T any] struct {
	fn func(ctx context.Context, v T) error
}

// NewEventCallback binds fn. A nil fn yields an unbound callback.
func NewEventCallback[T any](fn func(ctx context.Context, v T) error) EventCallback[T] {
	return EventCallback[T]{fn: fn}
}

// CallbackFunc binds a function that cannot fail.
func CallbackFunc[T any](fn func(v T)) EventCallback[T] {
	if fn == nil {
		return EventCallback[T]{}
	}
	return EventCallback[T]{fn: func(_ context.Context, v T) error {
		fn(v)
		return nil
	}}
}

// HasDelegate reports whether the callback is bound.
func (c EventCallback[T]) HasDelegate() bool {
	return c.fn != nil
}

// InvokeAsync calls the bound function and waits for it. Invoking an unbound
// callback does nothing.
func (c EventCallback[T]) InvokeAsync(ctx context.Context, v T) error {
	if c.fn == nil {
		return nil
	}
	return c.fn(ctx, v)
}

package params

import (
	"context"

	"github.com/pkg/errors"
)

// A Builder configures a registered Tracker. Every setter overwrites the
// corresponding collaborator and returns the builder for chaining.
//
// Setters are meant to run before the tracker's first synchronization. A
// setter called afterwards is not applied, and Build reports ErrReconfigured.
type Builder[T any] struct {
	tracker *Tracker[T]
	err     error
}

func (b *Builder[T]) configure(what string, apply func(t *Tracker[T])) *Builder[T] {
	if b.tracker.initialized {
		if b.err == nil {
			b.err = errors.Wrapf(ErrReconfigured, "parameter %q: cannot set %s", b.tracker.name, what)
		}
		return b
	}
	apply(b.tracker)
	return b
}

// Source sets the function returning the parameter's current value. A
// tracker without a source never does anything.
func (b *Builder[T]) Source(fn func() T) *Builder[T] {
	return b.configure("source", func(t *Tracker[T]) { t.source = fn })
}

// Bind sets the getter of the notification callback. The getter is called on
// every change so a callback re-delivered by the parent is picked up.
func (b *Builder[T]) Bind(fn func() EventCallback[T]) *Builder[T] {
	return b.configure("binding", func(t *Tracker[T]) { t.notify = fn })
}

// OnChange sets the synchronous change handler.
func (b *Builder[T]) OnChange(fn func(prev, next T) error) *Builder[T] {
	return b.configure("change handler", func(t *Tracker[T]) { t.onChange = fn })
}

// OnChangeAsync sets the asynchronous change handler. It runs after the
// synchronous one and is waited for before the binding is notified.
func (b *Builder[T]) OnChangeAsync(fn func(ctx context.Context, prev, next T) error) *Builder[T] {
	return b.configure("async change handler", func(t *Tracker[T]) { t.onChangeAsync = fn })
}

// Comparer sets the equality policy. nil restores Default.
func (b *Builder[T]) Comparer(eq EqualFunc[T]) *Builder[T] {
	return b.configure("comparer", func(t *Tracker[T]) {
		if eq == nil {
			eq = Default[T]()
		}
		t.equal = eq
	})
}

// Build returns the configured tracker. The tracker is already registered;
// Build only reports configuration errors.
func (b *Builder[T]) Build() (*Tracker[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tracker, nil
}

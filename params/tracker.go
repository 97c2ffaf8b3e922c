package params

import (
	"context"

	"github.com/go-logr/logr"
)

// A Tracker holds the last synchronized value of one parameter and
// dispatches change handlers when a newly fetched value differs from it.
type Tracker[T any] struct {
	name        string
	value       T
	initialized bool

	source        func() T
	equal         EqualFunc[T]
	onChange      func(prev, next T) error
	onChangeAsync func(ctx context.Context, prev, next T) error
	notify        func() EventCallback[T]

	log      logr.Logger
	observer Observer
}

func newTracker[T any](name string, log logr.Logger, observer Observer) *Tracker[T] {
	if observer == nil {
		observer = nopObserver{}
	}
	return &Tracker[T]{
		name:     name,
		equal:    Default[T](),
		log:      log,
		observer: observer,
	}
}

// Name returns the parameter name. It is only used for diagnostics.
func (t *Tracker[T]) Name() string {
	return t.name
}

// Value returns the last synchronized value.
func (t *Tracker[T]) Value() T {
	return t.value
}

// Initialized reports whether the tracker has captured its first value.
func (t *Tracker[T]) Initialized() bool {
	return t.initialized
}

// Synchronize fetches the current value from the source and compares it with
// the captured one.
//
// Without a source Synchronize does nothing. The first call captures the
// value without dispatching anything. On a change the new value is committed
// before the handlers run, then the synchronous handler, the asynchronous
// handler and the bound notification callback are called in that order,
// each one returning before the next starts. The first error stops the
// sequence and is returned as is.
//
// ctx is passed to the asynchronous handler and to the notification callback.
// Synchronize never cancels them.
func (t *Tracker[T]) Synchronize(ctx context.Context) error {
	if t.source == nil {
		t.observer.ObserveSync(t.name, OutcomeSkipped)
		return nil
	}

	next := t.source()

	if !t.initialized {
		t.value = next
		t.initialized = true
		t.observer.ObserveSync(t.name, OutcomeCaptured)
		return nil
	}

	if t.equal(t.value, next) {
		t.observer.ObserveSync(t.name, OutcomeUnchanged)
		return nil
	}

	prev := t.value
	t.value = next
	t.log.V(1).Info("Parameter changed")

	if err := t.dispatch(ctx, prev, next); err != nil {
		t.observer.ObserveSync(t.name, OutcomeFailed)
		return err
	}
	t.observer.ObserveSync(t.name, OutcomeChanged)
	return nil
}

func (t *Tracker[T]) dispatch(ctx context.Context, prev, next T) error {
	if t.onChange != nil {
		if err := t.onChange(prev, next); err != nil {
			return err
		}
	}

	if t.onChangeAsync != nil {
		if err := t.onChangeAsync(ctx, prev, next); err != nil {
			return err
		}
	}

	if t.notify == nil {
		return nil
	}
	cb := t.notify()
	if !cb.HasDelegate() {
		return nil
	}
	t.log.V(1).Info("Notifying binding")
	return cb.InvokeAsync(ctx, next)
}

package params

import "github.com/pkg/errors"

// A Scope registers trackers into a Synchronizer. It is opened once while a
// component is constructed and closed when construction ends.
type Scope struct {
	owner  *Synchronizer
	closed bool
}

// Close ends registration. Calling it again has no effect, and trackers
// registered before it keep working.
func (s *Scope) Close() {
	s.closed = true
}

// Closed reports whether Close has been called.
func (s *Scope) Closed() bool {
	return s.closed
}

// Register creates a tracker for the named parameter, appends it to the
// scope's synchronizer and returns a builder for it. Names need not be
// unique.
func Register[T any](s *Scope, name string) (*Builder[T], error) {
	if s.closed {
		return nil, errors.Wrapf(ErrScopeClosed, "cannot register parameter %q", name)
	}
	t := newTracker[T](name, s.owner.log.WithValues("parameter", name), s.owner.observer)
	s.owner.Add(t)
	return &Builder[T]{tracker: t}, nil
}

// Track registers the named parameter with its value source.
func Track[T any](s *Scope, name string, source func() T) (*Builder[T], error) {
	b, err := Register[T](s, name)
	if err != nil {
		return nil, err
	}
	return b.Source(source), nil
}

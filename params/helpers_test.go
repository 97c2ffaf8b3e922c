package params

import (
	"testing"
	"time"
)

// track registers a tracker on s inside its own scope.
func track[T any](t *testing.T, s *Synchronizer, name string, source func() T, configure func(b *Builder[T])) *Tracker[T] {
	t.Helper()

	scope := s.Begin()
	defer scope.Close()

	b, err := Track(scope, name, source)
	if err != nil {
		t.Fatalf("Track(%q): %v", name, err)
	}
	if configure != nil {
		configure(b)
	}
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build(%q): %v", name, err)
	}
	return tr
}

// suspend blocks on work done by another goroutine, the way an asynchronous
// handler waiting on I/O would.
func suspend(work func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		time.Sleep(2 * time.Millisecond)
		work()
	}()
	<-done
}

type recordingObserver struct {
	syncs  []string
	passes []error
}

func (o *recordingObserver) ObserveSync(parameter string, outcome Outcome) {
	o.syncs = append(o.syncs, parameter+"="+outcome.String())
}

func (o *recordingObserver) ObservePass(_ time.Duration, err error) {
	o.passes = append(o.passes, err)
}

package params

import (
	"context"
	"time"

	"github.com/go-logr/logr"
)

// A Syncer is a tracker with its value type erased.
type Syncer interface {
	Name() string
	Synchronize(ctx context.Context) error
}

var _ Syncer = (*Tracker[int])(nil)

// A Synchronizer holds every tracker of one component instance in
// registration order.
type Synchronizer struct {
	trackers []Syncer
	log      logr.Logger
	observer Observer
}

// An Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger sets the logger handed to registered trackers.
func WithLogger(log logr.Logger) Option {
	return func(s *Synchronizer) {
		s.log = log
	}
}

// WithObserver sets the observer told about every synchronization. If o also
// implements PassObserver it is told about every SyncAll pass too.
func WithObserver(o Observer) Option {
	return func(s *Synchronizer) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewSynchronizer returns an empty Synchronizer.
func NewSynchronizer(opts ...Option) *Synchronizer {
	s := &Synchronizer{
		log:      logr.Discard(),
		observer: nopObserver{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Begin opens a registration scope on s.
func (s *Synchronizer) Begin() *Scope {
	return &Scope{owner: s}
}

// Add appends t. Duplicates are not detected.
func (s *Synchronizer) Add(t Syncer) {
	s.trackers = append(s.trackers, t)
}

// Len returns the number of registered trackers.
func (s *Synchronizer) Len() int {
	return len(s.trackers)
}

// Names returns the parameter names in registration order.
func (s *Synchronizer) Names() []string {
	names := make([]string, 0, len(s.trackers))
	for _, t := range s.trackers {
		names = append(names, t.Name())
	}
	return names
}

// SyncAll synchronizes every tracker in registration order, each one
// returning before the next starts. The first error aborts the pass and is
// returned unchanged; trackers after the failing one are left for the next
// pass.
//
// Handlers may trigger a nested SyncAll. Nothing guards against it and the
// nested pass sees trackers the outer pass has not reached yet.
func (s *Synchronizer) SyncAll(ctx context.Context) error {
	start := time.Now()
	for _, t := range s.trackers {
		if err := t.Synchronize(ctx); err != nil {
			s.log.V(1).Info("Synchronization pass aborted", "parameter", t.Name(), "error", err.Error())
			s.observePass(start, err)
			return err
		}
	}
	s.observePass(start, nil)
	return nil
}

func (s *Synchronizer) observePass(start time.Time, err error) {
	if po, ok := s.observer.(PassObserver); ok {
		po.ObservePass(time.Since(start), err)
	}
}

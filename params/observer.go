package params

import "time"

// Outcome classifies a single tracker synchronization.
type Outcome int

const (
	// OutcomeSkipped means the tracker has no value source.
	OutcomeSkipped Outcome = iota
	// OutcomeCaptured means the first value was captured silently.
	OutcomeCaptured
	// OutcomeUnchanged means the comparer reported no change.
	OutcomeUnchanged
	// OutcomeChanged means the value changed and every handler succeeded.
	OutcomeChanged
	// OutcomeFailed means the value changed and a handler returned an error.
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeCaptured:
		return "captured"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeChanged:
		return "changed"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// An Observer is told the outcome of every tracker synchronization.
type Observer interface {
	ObserveSync(parameter string, outcome Outcome)
}

// A PassObserver is an Observer that is also told about every SyncAll pass.
type PassObserver interface {
	Observer
	ObservePass(elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) ObserveSync(string, Outcome) {}

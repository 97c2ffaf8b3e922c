// Package metrics exports parameter synchronization outcomes to Prometheus.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vcrobe/nojs-params/params"
)

const namespace = "nojs_params"

// Recorder counts synchronizations per parameter and outcome and times every
// SyncAll pass.
type Recorder struct {
	syncs  *prometheus.CounterVec
	passes *prometheus.HistogramVec
}

var _ params.PassObserver = (*Recorder)(nil)

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "synchronizations_total",
			Help:      "Number of parameter synchronizations by outcome.",
		}, []string{"parameter", "outcome"}),
		passes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_all_duration_seconds",
			Help:      "Duration of synchronization passes over all parameters of a component.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{r.syncs, r.passes} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "cannot register parameter metrics")
		}
	}
	return r, nil
}

// ObserveSync implements params.Observer.
func (r *Recorder) ObserveSync(parameter string, outcome params.Outcome) {
	r.syncs.WithLabelValues(parameter, outcome.String()).Inc()
}

// ObservePass implements params.PassObserver.
func (r *Recorder) ObservePass(elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	r.passes.WithLabelValues(result).Observe(elapsed.Seconds())
}

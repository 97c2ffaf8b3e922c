package scenario

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-params/params"
	"github.com/vcrobe/nojs-params/runtime"
	"github.com/vcrobe/nojs-params/vdom"
)

// Event kinds.
const (
	KindChange = "change"
	KindNotify = "notify"
)

// Event is a change handler call or a binding notification observed while
// replaying a scenario.
type Event struct {
	Pass      int
	Parameter string
	Kind      string
	Prev      any
	Next      any
}

func (e Event) String() string {
	if e.Kind == KindNotify {
		return fmt.Sprintf("pass %d: %s notified %v", e.Pass, e.Parameter, e.Next)
	}
	return fmt.Sprintf("pass %d: %s changed %v -> %v", e.Pass, e.Parameter, e.Prev, e.Next)
}

// A Runner replays scenarios.
type Runner struct {
	log      logr.Logger
	observer params.Observer
}

// A RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used by the runner, the host and the trackers.
func WithLogger(log logr.Logger) RunnerOption {
	return func(r *Runner) {
		r.log = log
	}
}

// WithObserver sets the observer of every tracker synchronization.
func WithObserver(o params.Observer) RunnerOption {
	return func(r *Runner) {
		r.observer = o
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{log: logr.Discard()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run delivers every pass of s to a component tracking s.Parameters and
// returns the events in the order they happened. The first pass only
// captures values. Run stops at the first pass that fails.
func (r *Runner) Run(ctx context.Context, s *Scenario) ([]Event, error) {
	rec := &recorder{log: r.log}
	d := &driver{
		params:   s.Parameters,
		values:   make(map[string]any),
		rec:      rec,
		observer: r.observer,
		log:      r.log,
	}

	host := runtime.NewHost(runtime.WithHostLogger(r.log.WithName("host")))
	host.SetCurrentComponent(d, "scenario")

	for i, pass := range s.Passes {
		rec.pass = i + 1
		for name, v := range pass {
			typ := d.typeOf(name)
			cv, err := convert(typ, v)
			if err != nil {
				return rec.events, errors.Wrapf(err, "pass %d: parameter %q", rec.pass, name)
			}
			d.values[name] = cv
		}

		r.log.V(1).Info("Delivering pass", "pass", rec.pass, "values", len(pass))
		if _, err := host.RenderRoot(ctx); err != nil {
			return rec.events, errors.Wrapf(err, "pass %d", rec.pass)
		}
	}
	return rec.events, nil
}

type recorder struct {
	log    logr.Logger
	pass   int
	events []Event
}

func (r *recorder) add(e Event) {
	e.Pass = r.pass
	r.events = append(r.events, e)
	r.log.Info("Parameter event", "pass", e.Pass, "parameter", e.Parameter, "kind", e.Kind,
		"prev", fmt.Sprint(e.Prev), "next", fmt.Sprint(e.Next))
}

// driver is the root component. It holds the values of the current pass and
// renders them into a tracked component.
type driver struct {
	runtime.ComponentBase
	params   []Parameter
	values   map[string]any
	rec      *recorder
	observer params.Observer
	log      logr.Logger
}

func (d *driver) typeOf(name string) string {
	for _, p := range d.params {
		if p.Name == name {
			return p.Type
		}
	}
	return ""
}

func (d *driver) Render(r runtime.Renderer) *vdom.VNode {
	values := make(map[string]any, len(d.values))
	for k, v := range d.values {
		values[k] = v
	}
	return r.RenderChild("tracked", d.newTracked(values))
}

func (d *driver) newTracked(values map[string]any) *tracked {
	t := &tracked{values: values}
	opts := []params.Option{params.WithLogger(d.log.WithName("params"))}
	if d.observer != nil {
		opts = append(opts, params.WithObserver(d.observer))
	}
	err := t.DeclareParameters(func(s *params.Scope) error {
		for _, p := range d.params {
			if err := declare(s, t, p, d.rec); err != nil {
				return err
			}
		}
		return nil
	}, opts...)
	if err != nil {
		// Parameters were validated when the scenario was loaded.
		panic(err)
	}
	return t
}

// tracked is a component whose parameters are described by the scenario.
type tracked struct {
	runtime.ComponentBase
	values map[string]any
}

func (t *tracked) ApplyProps(source runtime.Component) {
	t.values = source.(*tracked).values
}

func (t *tracked) Render(runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": "tracked"})
}

func declare(s *params.Scope, t *tracked, p Parameter, rec *recorder) error {
	switch p.Type {
	case TypeString:
		eq := comparer[string](p.Comparer)
		if p.Comparer == ComparerFold {
			eq = params.EqualFold()
		}
		return declareTyped(s, t, p, eq, rec)
	case TypeInt:
		return declareTyped(s, t, p, comparer[int](p.Comparer), rec)
	case TypeFloat:
		return declareTyped(s, t, p, comparer[float64](p.Comparer), rec)
	case TypeBool:
		return declareTyped(s, t, p, comparer[bool](p.Comparer), rec)
	case TypeList:
		return declareTyped(s, t, p, comparer[[]string](p.Comparer), rec)
	}
	return errors.Errorf("parameter %q: unknown type %q", p.Name, p.Type)
}

func comparer[T any](name string) params.EqualFunc[T] {
	switch name {
	case ComparerNever:
		return params.Never[T]()
	case ComparerStructural:
		return params.Structural[T]()
	}
	return nil
}

func declareTyped[T any](s *params.Scope, t *tracked, p Parameter, eq params.EqualFunc[T], rec *recorder) error {
	b, err := params.Track(s, p.Name, func() T {
		v, _ := t.values[p.Name].(T)
		return v
	})
	if err != nil {
		return err
	}
	b.Comparer(eq).OnChange(func(prev, next T) error {
		rec.add(Event{Parameter: p.Name, Kind: KindChange, Prev: prev, Next: next})
		return nil
	})
	if p.Bind {
		b.Bind(func() params.EventCallback[T] {
			return params.CallbackFunc(func(v T) {
				rec.add(Event{Parameter: p.Name, Kind: KindNotify, Next: v})
			})
		})
	}
	_, err = b.Build()
	return err
}

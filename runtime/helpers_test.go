package runtime

import (
	"context"
	"errors"

	"github.com/go-logr/logr"

	"github.com/vcrobe/nojs-params/params"
	"github.com/vcrobe/nojs-params/vdom"
)

var errFail = errors.New("handler failed")

// probe is a child component tracking a single Name parameter and recording
// every lifecycle event into a shared log.
type probe struct {
	ComponentBase
	Name    string
	Changed params.EventCallback[string]

	events *[]string
}

func newProbe(name string, events *[]string) *probe {
	p := &probe{Name: name, events: events}
	err := p.DeclareParameters(func(s *params.Scope) error {
		b, err := params.Track(s, "Name", func() string { return p.Name })
		if err != nil {
			return err
		}
		_, err = b.OnChange(func(prev, next string) error {
			p.record("changed " + prev + "->" + next)
			if next == "fail" {
				return errFail
			}
			return nil
		}).Bind(func() params.EventCallback[string] { return p.Changed }).Build()
		return err
	}, params.WithLogger(logr.Discard()))
	if err != nil {
		panic(err)
	}
	return p
}

func (p *probe) record(e string) {
	*p.events = append(*p.events, e)
}

func (p *probe) OnInit()          { p.record("OnInit") }
func (p *probe) OnParametersSet() { p.record("OnParametersSet") }
func (p *probe) OnDestroy()       { p.record("OnDestroy") }

func (p *probe) ApplyProps(source Component) {
	src := source.(*probe)
	p.Name = src.Name
	p.Changed = src.Changed
	p.record("ApplyProps")
}

func (p *probe) SyncParameters(ctx context.Context, cp Checkpoint) error {
	p.record("sync " + cp.String())
	return p.ComponentBase.SyncParameters(ctx, cp)
}

func (p *probe) Render(r Renderer) *vdom.VNode {
	p.record("Render")
	return vdom.Paragraph(p.Name, map[string]any{"id": "name"})
}

// page is a root component rendering an optional probe and echoing the
// probe's Changed notifications.
type page struct {
	ComponentBase
	childName string
	showChild bool
	echo      string

	events *[]string
}

func (p *page) Render(r Renderer) *vdom.VNode {
	children := []*vdom.VNode{vdom.Paragraph("echo: "+p.echo, map[string]any{"id": "echo"})}
	if p.showChild {
		child := newProbe(p.childName, p.events)
		child.Changed = params.CallbackFunc(func(v string) {
			p.echo = v
			p.StateHasChanged()
		})
		children = append(children, r.RenderChild("child", child))
	}
	return vdom.Div(nil, children...)
}

func newTestHost(root Component) *Host {
	h := NewHost(WithHostLogger(logr.Discard()))
	h.SetCurrentComponent(root, "root")
	return h
}

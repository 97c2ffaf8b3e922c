package profile

import (
	"github.com/vcrobe/nojs-params/params"
	"github.com/vcrobe/nojs-params/runtime"
	"github.com/vcrobe/nojs-params/signals"
	"github.com/vcrobe/nojs-params/vdom"
)

// Page owns the user data and renders a Card for it. When Bound is set the
// card reports name changes into Echo.
type Page struct {
	runtime.ComponentBase

	UserName        string
	Tags            []string
	CaseInsensitive bool
	Bound           bool
	Echo            *signals.Signal[string]

	unsubscribe func()
}

// NewPage creates a page for the given user.
func NewPage(name string, tags []string) *Page {
	return &Page{
		UserName: name,
		Tags:     tags,
		Echo:     signals.NewSignal(""),
	}
}

func (p *Page) OnInit() {
	p.unsubscribe = p.Echo.Subscribe(p.StateHasChanged)
}

func (p *Page) OnDestroy() {
	if p.unsubscribe != nil {
		p.unsubscribe()
	}
}

// Rename changes the user's name and re-renders.
func (p *Page) Rename(name string) {
	p.UserName = name
	p.StateHasChanged()
}

// SetTags replaces the user's tags and re-renders.
func (p *Page) SetTags(tags []string) {
	p.Tags = tags
	p.StateHasChanged()
}

func (p *Page) Render(r runtime.Renderer) *vdom.VNode {
	var changed params.EventCallback[string]
	if p.Bound {
		changed = p.Echo.Callback()
	}
	return vdom.Div(nil,
		vdom.Paragraph("Echo: "+p.Echo.Get(), map[string]any{"id": "echo"}),
		r.RenderChild("card", NewCard(CardProps{
			Name:            p.UserName,
			Tags:            p.Tags,
			NameChanged:     changed,
			CaseInsensitive: p.CaseInsensitive,
		})),
	)
}

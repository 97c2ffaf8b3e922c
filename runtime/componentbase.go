package runtime

import (
	"context"

	"github.com/vcrobe/nojs-params/console"
	"github.com/vcrobe/nojs-params/params"
)

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method and to parameter tracking.
type ComponentBase struct {
	renderer Renderer // Use interface type, not concrete implementation
	params   *params.Synchronizer
}

var _ ParameterSynchronizer = (*ComponentBase)(nil)

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer, enabling StateHasChanged. This method should not be
// called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// StateHasChanged signals to the framework that the component's state has
// been updated and the UI should be re-rendered to reflect the changes.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		console.Error("StateHasChanged called, but renderer is nil (component not mounted?)")
		return
	}
	b.renderer.ReRender()
}

// DeclareParameters opens a registration scope, hands it to declare and
// closes it when declare returns, even if it panics. Call it from the
// component's constructor.
//
// opts configure the component's synchronizer and only apply on the first
// call.
//
//	func NewGreeting() *Greeting {
//	    g := &Greeting{}
//	    err := g.DeclareParameters(func(s *params.Scope) error {
//	        b, err := params.Track(s, "Name", func() string { return g.Name })
//	        if err != nil {
//	            return err
//	        }
//	        _, err = b.OnChange(g.nameChanged).Build()
//	        return err
//	    })
//	    ...
//	}
func (b *ComponentBase) DeclareParameters(declare func(scope *params.Scope) error, opts ...params.Option) error {
	if b.params == nil {
		b.params = params.NewSynchronizer(opts...)
	}
	scope := b.params.Begin()
	defer scope.Close()
	return declare(scope)
}

// Parameters returns the component's synchronizer, or nil if no parameters
// were declared.
func (b *ComponentBase) Parameters() *params.Synchronizer {
	return b.params
}

// SyncParameters synchronizes every declared parameter. Hosts call it at each
// Checkpoint; errors from change handlers are returned unchanged.
func (b *ComponentBase) SyncParameters(ctx context.Context, _ Checkpoint) error {
	if b.params == nil {
		return nil
	}
	return b.params.SyncAll(ctx)
}

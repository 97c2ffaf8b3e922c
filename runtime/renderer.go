package runtime

import "github.com/vcrobe/nojs-params/vdom"

// Renderer defines the minimal set of runtime operations used by Render() code.
type Renderer interface {
	// RenderChild is used by Render code to render child components.
	// The key parameter uniquely identifies the component instance for state preservation.
	// childWithProps carries the parameters for this pass; on re-renders they are
	// applied to the preserved instance.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()
}

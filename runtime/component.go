package runtime

import "github.com/vcrobe/nojs-params/vdom"

// Component interface defines the structure for all components in the framework.
// The Render method accepts the Renderer interface (not concrete type) so the
// Host and test harnesses can drive it alike.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

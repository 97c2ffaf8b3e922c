// Package testcomponents holds sample components and a harness for
// rendering them in memory.
package testcomponents

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/vcrobe/nojs-params/runtime"
	"github.com/vcrobe/nojs-params/vdom"
)

// TestRenderer is a minimal test harness around runtime.Host for in-memory
// testing without browser or WASM dependencies.
//
// It allows tests to:
// - Attach a root component
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree and lifecycle errors
type TestRenderer struct {
	*runtime.Host
}

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	h := runtime.NewHost(runtime.WithHostLogger(logr.Discard()))
	h.SetCurrentComponent(comp, "root")
	return &TestRenderer{Host: h}
}

// RenderRoot renders the tree and returns it. Lifecycle errors are available
// from LastError.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	vnode, _ := r.Host.RenderRoot(context.Background())
	return vnode
}

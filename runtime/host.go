package runtime

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/vcrobe/nojs-params/console"
	"github.com/vcrobe/nojs-params/vdom"
)

// maxDeferredRenders bounds the re-renders requested while a pass is running.
const maxDeferredRenders = 16

// Compile-time assertion to ensure Host implements the Renderer interface.
var _ Renderer = (*Host)(nil)

// Host renders a component tree in memory. It manages the component instance
// tree and drives every instance through its lifecycle checkpoints.
type Host struct {
	instances   map[string]Component
	initialized map[string]bool // Track which components have been initialized
	activeKeys  map[string]bool // Track which components are active in the current render

	current    Component // The currently active root component
	currentKey string
	prevVDOM   *vdom.VNode

	log logr.Logger

	// State of the pass in progress. Render methods have no context
	// parameter, so RenderChild picks it up from here.
	ctx       context.Context
	rendering bool
	pending   bool
	passErr   error
}

// A HostOption configures a Host.
type HostOption func(*Host)

// WithHostLogger sets the host's logger. The default writes to the console.
func WithHostLogger(log logr.Logger) HostOption {
	return func(h *Host) {
		h.log = log
	}
}

// NewHost creates a new in-memory host.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		log:         console.Logger(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// SetCurrentComponent sets the root component and its key. A new key mounts
// the component as a new instance on the next render.
func (h *Host) SetCurrentComponent(comp Component, key string) {
	h.current = comp
	h.currentKey = key
}

// RenderRoot renders the whole tree. Instances seen for the first time are
// mounted; instances seen before receive the new props and go through their
// update checkpoints. Re-renders requested during the pass run right after
// it. The returned error is the first lifecycle failure of the pass; the
// tree is rendered regardless.
func (h *Host) RenderRoot(ctx context.Context) (*vdom.VNode, error) {
	if h.current == nil {
		return nil, errors.New("no component to render")
	}
	if h.rendering {
		h.pending = true
		return h.prevVDOM, nil
	}

	h.rendering = true
	h.ctx = ctx
	h.passErr = nil
	defer func() {
		h.rendering = false
		h.ctx = nil
	}()

	for i := 0; ; i++ {
		h.pending = false
		h.renderPass()
		if !h.pending {
			break
		}
		if i == maxDeferredRenders {
			h.fail(errors.Errorf("re-render requested %d times during a single pass", maxDeferredRenders))
			break
		}
	}
	return h.prevVDOM, h.passErr
}

func (h *Host) renderPass() {
	// Reset activeKeys for this render cycle
	h.activeKeys = make(map[string]bool)
	h.prevVDOM = h.RenderChild(h.currentKey, h.current)

	// Clean up components that were not rendered in this cycle
	h.cleanupUnmountedComponents()
}

// RenderChild is called by Render code to render a child component.
// It handles the core logic of instance creation and reuse.
func (h *Host) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	h.activeKeys[key] = true

	instance, exists := h.instances[key]
	if !exists {
		// First time seeing this component at this location, so store the new instance.
		instance = childWithProps
		h.instances[key] = instance
	} else if instance != childWithProps {
		// Preserve the existing instance to keep state and apply the new props to it.
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	// Ensure the instance knows about the renderer so it can call StateHasChanged.
	instance.SetRenderer(h)

	h.runLifecycle(key, instance, !h.initialized[key])
	h.initialized[key] = true

	return instance.Render(h)
}

// runLifecycle calls the hooks and checkpoints of one delivery in order.
func (h *Host) runLifecycle(key string, instance Component, first bool) {
	h.checkpoint(key, instance, CheckpointSetParameters)

	if first {
		if initializer, ok := instance.(Initializer); ok {
			h.callHook(key, "OnInit", initializer.OnInit)
		}
		h.checkpoint(key, instance, CheckpointInitialized)
	}

	if receiver, ok := instance.(ParameterReceiver); ok {
		h.callHook(key, "OnParametersSet", receiver.OnParametersSet)
	}
	h.checkpoint(key, instance, CheckpointParametersSet)
}

func (h *Host) checkpoint(key string, instance Component, cp Checkpoint) {
	ps, ok := instance.(ParameterSynchronizer)
	if !ok {
		return
	}
	ctx := h.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	h.callHook(key, cp.String(), func() {
		if err := ps.SyncParameters(ctx, cp); err != nil {
			h.syncFailed(key, cp, errors.Wrapf(err, "component %s: %s checkpoint", key, cp))
		}
	})
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (h *Host) cleanupUnmountedComponents() {
	for key, instance := range h.instances {
		if h.activeKeys[key] {
			continue
		}
		if cleaner, ok := instance.(Cleaner); ok {
			h.callHook(key, "OnDestroy", cleaner.OnDestroy)
		}
		delete(h.instances, key)
		delete(h.initialized, key)
	}
}

// ReRender re-runs the render cycle. During a pass the request is deferred
// until the pass ends.
func (h *Host) ReRender() {
	if h.rendering {
		h.pending = true
		return
	}
	if _, err := h.RenderRoot(context.Background()); err != nil {
		h.log.Error(err, "Re-render failed")
	}
}

// GetCurrentVDOM returns the most recently rendered tree.
func (h *Host) GetCurrentVDOM() *vdom.VNode {
	return h.prevVDOM
}

// LastError returns the first lifecycle failure of the most recent pass,
// including passes started by StateHasChanged.
func (h *Host) LastError() error {
	return h.passErr
}

// fail records the first error of the pass.
func (h *Host) fail(err error) {
	if h.passErr == nil {
		h.passErr = err
	}
}

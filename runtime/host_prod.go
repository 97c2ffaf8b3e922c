//go:build !dev

package runtime

import "github.com/pkg/errors"

// callHook invokes a lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (h *Host) callHook(key, hook string, fn func()) {
	defer func() {
		if rec := recover(); rec != nil {
			err := errors.Errorf("%s panic in component %s: %v", hook, key, rec)
			h.log.Error(err, "Lifecycle hook panicked", "component", key, "hook", hook)
			h.fail(err)
		}
	}()
	fn()
}

// syncFailed handles a parameter synchronization error in production mode.
// In production mode, the error is logged and reported by RenderRoot; the
// render continues.
func (h *Host) syncFailed(key string, cp Checkpoint, err error) {
	h.log.Error(err, "Parameter synchronization failed", "component", key, "checkpoint", cp.String())
	h.fail(err)
}

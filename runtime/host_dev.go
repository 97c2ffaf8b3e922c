//go:build dev

package runtime

// callHook invokes a lifecycle method in development mode.
// In dev mode, panics propagate to aid debugging and fast failure.
func (h *Host) callHook(key, hook string, fn func()) {
	fn()
}

// syncFailed handles a parameter synchronization error in development mode.
// In dev mode, the error panics to aid debugging and fast failure.
func (h *Host) syncFailed(key string, cp Checkpoint, err error) {
	panic(err)
}

//go:build !(js && wasm)

package console

// There is no browser console outside js/wasm; output is discarded.
func emit(Level, ...any) {}

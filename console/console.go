//go:build js && wasm

package console

import (
	"syscall/js"
)

func emit(level Level, args ...any) {
	console := js.Global().Get("console")
	switch level {
	case LevelWarn:
		console.Call("warn", args...)
	case LevelError:
		console.Call("error", args...)
	default:
		console.Call("log", args...)
	}
}

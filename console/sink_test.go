package console

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type line struct {
	Level Level
	Text  string
}

func TestNewLogger(t *testing.T) {
	var got []line
	log := NewLogger(func(level Level, text string) {
		got = append(got, line{level, text})
	}, 1)

	log.Info("Mounted", "key", "root")
	log.V(1).Info("Parameter changed", "count", 3)
	log.V(2).Info("Too verbose")
	log.WithName("host").WithValues("component", "profile").Error(errors.New("boom"), "Synchronization failed")
	log.WithName("a").WithName("b").Info("Odd", "dangling")

	want := []line{
		{LevelLog, `"level"=0 "msg"="Mounted" "key"="root"`},
		{LevelLog, `"level"=1 "msg"="Parameter changed" "count"=3`},
		{LevelError, `host: "msg"="Synchronization failed" "error"="boom" "component"="profile"`},
		{LevelLog, `a/b: "level"=0 "msg"="Odd" "dangling"="<no-value>"`},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines: -want, +got:\n%s", diff)
	}
}

func TestNewLogger_WithValuesDoesNotLeak(t *testing.T) {
	var got []string
	base := NewLogger(func(_ Level, text string) { got = append(got, text) }, 0)

	a := base.WithValues("a", 1)
	b := base.WithValues("b", 2)
	a.Info("x")
	b.Info("y")

	if diff := cmp.Diff([]string{`"level"=0 "msg"="x" "a"=1`, `"level"=0 "msg"="y" "b"=2`}, got); diff != "" {
		t.Errorf("Lines: -want, +got:\n%s", diff)
	}
}

func TestLogger_NativeIsSilent(t *testing.T) {
	// Outside js/wasm the console discards output; this must not panic.
	Logger().Info("ignored")
	Log("ignored")
	Warn("ignored")
	Error("ignored")
}

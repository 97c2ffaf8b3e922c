package params

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestBuilder_ConfigureAfterBuild verifies that setters called after Build
// but before the first synchronization still apply.
func TestBuilder_ConfigureAfterBuild(t *testing.T) {
	current := 1
	changes := 0
	scope := NewSynchronizer().Begin()
	b, err := Track(scope, "Count", func() int { return current })
	if err != nil {
		t.Fatalf("Track: %v", err)
	}
	scope.Close()
	tr, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	b.OnChange(func(prev, next int) error {
		changes++
		return nil
	})
	if _, err := b.Build(); err != nil {
		t.Fatalf("Build after late setter: %v", err)
	}

	_ = tr.Synchronize(context.Background())
	current = 2
	_ = tr.Synchronize(context.Background())

	if changes != 1 {
		t.Errorf("Expected 1 change, got %d", changes)
	}
}

// TestBuilder_ReconfigureAfterSync verifies that every setter is refused once
// the tracker has been synchronized.
func TestBuilder_ReconfigureAfterSync(t *testing.T) {
	setters := map[string]func(b *Builder[string]){
		"Source":        func(b *Builder[string]) { b.Source(func() string { return "other" }) },
		"Bind":          func(b *Builder[string]) { b.Bind(func() EventCallback[string] { return EventCallback[string]{} }) },
		"OnChange":      func(b *Builder[string]) { b.OnChange(func(prev, next string) error { return nil }) },
		"OnChangeAsync": func(b *Builder[string]) { b.OnChangeAsync(func(ctx context.Context, prev, next string) error { return nil }) },
		"Comparer":      func(b *Builder[string]) { b.Comparer(EqualFold()) },
	}

	for name, set := range setters {
		name := name
		set := set
		t.Run(name, func(t *testing.T) {
			scope := NewSynchronizer().Begin()
			b, err := Track(scope, "Name", func() string { return "John" })
			if err != nil {
				t.Fatalf("Track: %v", err)
			}
			scope.Close()
			tr, err := b.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			_ = tr.Synchronize(context.Background())

			set(b)
			_, err = b.Build()

			if diff := cmp.Diff(ErrReconfigured, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("Build() after %s: -want error, +got error:\n%s", name, diff)
			}
			if tr.Value() != "John" {
				t.Errorf("Expected refused %s to leave the tracker untouched, got '%s'", name, tr.Value())
			}
		})
	}
}

// TestBuilder_NilComparerRestoresDefault verifies that Comparer(nil) falls
// back to the default policy.
func TestBuilder_NilComparerRestoresDefault(t *testing.T) {
	current := "John"
	changes := 0
	tr := track(t, NewSynchronizer(), "Name", func() string { return current }, func(b *Builder[string]) {
		b.Comparer(EqualFold()).Comparer(nil).OnChange(func(prev, next string) error {
			changes++
			return nil
		})
	})
	_ = tr.Synchronize(context.Background())

	current = "JOHN"
	_ = tr.Synchronize(context.Background())

	if changes != 1 {
		t.Errorf("Expected the default case-sensitive policy to detect the change, got %d changes", changes)
	}
}

// TestBuilder_LastSetterWins verifies that setters overwrite rather than
// accumulate.
func TestBuilder_LastSetterWins(t *testing.T) {
	current := 1
	var calls []string
	tr := track(t, NewSynchronizer(), "Count", func() int { return current }, func(b *Builder[int]) {
		b.OnChange(func(prev, next int) error {
			calls = append(calls, "first")
			return nil
		}).OnChange(func(prev, next int) error {
			calls = append(calls, "second")
			return nil
		})
	})
	_ = tr.Synchronize(context.Background())
	current = 2
	_ = tr.Synchronize(context.Background())

	if diff := cmp.Diff([]string{"second"}, calls); diff != "" {
		t.Errorf("Handlers called: -want, +got:\n%s", diff)
	}
}

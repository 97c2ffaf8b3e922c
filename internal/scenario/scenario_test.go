package scenario

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `
parameters:
  - name: Name
    type: string
    comparer: fold
    bind: true
  - name: Count
    type: int
  - name: Tags
    type: list
passes:
  - {Name: John, Count: 1, Tags: [go]}
  - {Name: JOHN}
  - {Name: Jane, Count: 2}
  - {Tags: [go]}
`

func TestLoad(t *testing.T) {
	t.Parallel()

	s, err := Load(strings.NewReader(example))
	require.NoError(t, err)

	require.Len(t, s.Parameters, 3)
	assert.Equal(t, ComparerFold, s.Parameters[0].Comparer)
	assert.Equal(t, ComparerDefault, s.Parameters[1].Comparer, "empty comparer defaults")
	assert.Len(t, s.Passes, 4)
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "no parameters",
			input:   "passes: []",
			wantErr: "declares no parameters",
		},
		{
			name:    "unknown field",
			input:   "parameters: [{name: A, type: int, colour: red}]",
			wantErr: "cannot decode scenario",
		},
		{
			name:    "unknown type",
			input:   "parameters: [{name: A, type: map}]",
			wantErr: `unknown type "map"`,
		},
		{
			name:    "duplicate",
			input:   "parameters: [{name: A, type: int}, {name: A, type: int}]",
			wantErr: "declared twice",
		},
		{
			name:    "fold on int",
			input:   "parameters: [{name: A, type: int, comparer: fold}]",
			wantErr: "needs type",
		},
		{
			name:    "undeclared value",
			input:   "parameters: [{name: A, type: int}]\npasses: [{B: 1}]",
			wantErr: `undeclared parameter "B"`,
		},
		{
			name:    "wrong value type",
			input:   "parameters: [{name: A, type: int}]\npasses: [{A: one}]",
			wantErr: "want int",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunner_Run(t *testing.T) {
	t.Parallel()

	s, err := Load(strings.NewReader(example))
	require.NoError(t, err)

	events, err := NewRunner().Run(context.Background(), s)
	require.NoError(t, err)

	got := make([]string, 0, len(events))
	for _, e := range events {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{
		"pass 3: Name changed John -> Jane",
		"pass 3: Name notified Jane",
		"pass 3: Count changed 1 -> 2",
		"pass 4: Tags changed [go] -> [go]",
	}, got)
}

func TestRunner_StructuralList(t *testing.T) {
	t.Parallel()

	s, err := Load(strings.NewReader(`
parameters:
  - {name: Tags, type: list, comparer: structural}
  - {name: Ratio, type: float}
passes:
  - {Tags: [a], Ratio: 1}
  - {Tags: [a]}
  - {Tags: [a, b], Ratio: 1.5}
`))
	require.NoError(t, err)

	events, err := NewRunner().Run(context.Background(), s)
	require.NoError(t, err)

	got := make([]string, 0, len(events))
	for _, e := range events {
		got = append(got, e.String())
	}
	assert.Equal(t, []string{
		"pass 3: Tags changed [a] -> [a b]",
		"pass 3: Ratio changed 1 -> 1.5",
	}, got)
}

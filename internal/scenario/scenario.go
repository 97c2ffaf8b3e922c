// Package scenario loads parameter delivery scenarios and replays them
// through a runtime.Host.
package scenario

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Parameter types.
const (
	TypeString = "string"
	TypeInt    = "int"
	TypeFloat  = "float"
	TypeBool   = "bool"
	TypeList   = "list"
)

// Comparers.
const (
	ComparerDefault    = "default"
	ComparerFold       = "fold"
	ComparerNever      = "never"
	ComparerStructural = "structural"
)

// Parameter declares one tracked parameter.
type Parameter struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Comparer string `yaml:"comparer,omitempty"`
	Bind     bool   `yaml:"bind,omitempty"`
}

// Scenario is a list of parameters and the values delivered on each pass. A
// parameter missing from a pass keeps its previous value.
type Scenario struct {
	Parameters []Parameter      `yaml:"parameters"`
	Passes     []map[string]any `yaml:"passes"`
}

// LoadFile reads and validates the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, errors.Wrap(err, "cannot open scenario")
	}
	defer f.Close() //nolint:errcheck // read only
	return Load(f)
}

// Load decodes and validates a scenario.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scenario{}
	if err := dec.Decode(s); err != nil {
		return nil, errors.Wrap(err, "cannot decode scenario")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks parameter declarations and that every delivered value
// names a declared parameter of a matching type.
func (s *Scenario) Validate() error {
	if len(s.Parameters) == 0 {
		return errors.New("scenario declares no parameters")
	}

	types := make(map[string]string, len(s.Parameters))
	for i := range s.Parameters {
		p := &s.Parameters[i]
		if p.Name == "" {
			return errors.Errorf("parameter %d has no name", i)
		}
		if _, dup := types[p.Name]; dup {
			return errors.Errorf("parameter %q declared twice", p.Name)
		}
		switch p.Type {
		case TypeString, TypeInt, TypeFloat, TypeBool, TypeList:
		default:
			return errors.Errorf("parameter %q: unknown type %q", p.Name, p.Type)
		}
		if p.Comparer == "" {
			p.Comparer = ComparerDefault
		}
		switch p.Comparer {
		case ComparerDefault, ComparerNever, ComparerStructural:
		case ComparerFold:
			if p.Type != TypeString {
				return errors.Errorf("parameter %q: comparer %q needs type %q", p.Name, p.Comparer, TypeString)
			}
		default:
			return errors.Errorf("parameter %q: unknown comparer %q", p.Name, p.Comparer)
		}
		types[p.Name] = p.Type
	}

	for i, pass := range s.Passes {
		for name, v := range pass {
			typ, ok := types[name]
			if !ok {
				return errors.Errorf("pass %d: undeclared parameter %q", i+1, name)
			}
			if _, err := convert(typ, v); err != nil {
				return errors.Wrapf(err, "pass %d: parameter %q", i+1, name)
			}
		}
	}
	return nil
}

// convert turns a decoded YAML value into the Go type of a parameter. A new
// slice is returned for every list so each delivery is a distinct instance.
func convert(typ string, v any) (any, error) {
	switch typ {
	case TypeString:
		s, ok := v.(string)
		if !ok {
			return nil, errors.Errorf("want string, got %T", v)
		}
		return s, nil
	case TypeInt:
		n, ok := v.(int)
		if !ok {
			return nil, errors.Errorf("want int, got %T", v)
		}
		return n, nil
	case TypeFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
		return nil, errors.Errorf("want float, got %T", v)
	case TypeBool:
		b, ok := v.(bool)
		if !ok {
			return nil, errors.Errorf("want bool, got %T", v)
		}
		return b, nil
	case TypeList:
		items, ok := v.([]any)
		if !ok {
			return nil, errors.Errorf("want list, got %T", v)
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			s, ok := it.(string)
			if !ok {
				return nil, errors.Errorf("want list of strings, got element %T", it)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, errors.Errorf("unknown type %q", typ)
}

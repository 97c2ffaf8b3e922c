package params

import (
	"math"
	"math/cmplx"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// EqualFunc reports whether two values of a parameter are unchanged.
type EqualFunc[T any] func(a, b T) bool

// Default returns the equality policy used when a tracker has no comparer.
//
// Scalars (booleans, numbers, strings) compare by value, and NaN equals NaN
// so the policy stays reflexive. Pointers, slices, maps, channels and funcs
// compare by identity: two distinct slices with identical contents are
// unequal, and mutating a slice in place is not a change. Slices are the
// same instance when they share the first backing element and the length.
// Zero-capacity slices and pointers to zero-size values may share one
// address, so distinct instances of them can compare equal.
// Arrays and structs compare element by element with these rules, and
// interfaces compare their dynamic type and then their dynamic value.
//
// A nil pointer, slice, map, func, channel or interface is "no value": two
// of them are equal, and one of them never equals a non-nil value.
func Default[T any]() EqualFunc[T] {
	return func(a, b T) bool {
		return equalValues(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
	}
}

func equalValues(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Bool:
		return a.Bool() == b.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() == b.Uint()
	case reflect.Float32, reflect.Float64:
		x, y := a.Float(), b.Float()
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	case reflect.Complex64, reflect.Complex128:
		x, y := a.Complex(), b.Complex()
		return x == y || (cmplx.IsNaN(x) && cmplx.IsNaN(y))
	case reflect.String:
		return a.String() == b.String()
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return a.Len() == b.Len() && a.Pointer() == b.Pointer()
	case reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() && b.IsNil()
		}
		return equalValues(a.Elem(), b.Elem())
	case reflect.Array:
		for i := 0; i < a.Len(); i++ {
			if !equalValues(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !equalValues(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	}
	return false
}

// Comparable compares values with ==.
func Comparable[T comparable]() EqualFunc[T] {
	return func(a, b T) bool { return a == b }
}

// EqualFold compares strings case-insensitively.
func EqualFold() EqualFunc[string] {
	return strings.EqualFold
}

// By compares the keys extracted from two values, for example a single ID
// field of a larger record.
func By[T any, K comparable](key func(T) K) EqualFunc[T] {
	return func(a, b T) bool { return key(a) == key(b) }
}

// Never reports every fetched value as a change.
func Never[T any]() EqualFunc[T] {
	return func(T, T) bool { return false }
}

// Structural compares values deeply with cmp.Equal. Unexported fields need
// an option such as cmpopts.IgnoreUnexported, otherwise cmp panics.
func Structural[T any](opts ...cmp.Option) EqualFunc[T] {
	return func(a, b T) bool { return cmp.Equal(a, b, opts...) }
}

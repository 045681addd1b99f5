package irtype

import (
	"errors"
	"reflect"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

var (
	ErrUnknownType     = errors.New("unknown IR type")
	ErrUnsupportedExpr = errors.New("unsupported type expression")
)

// Scalar element types. Each capsule carries the Go type used to store one
// element, which is informational only.
var (
	I1    = cty.Capsule("i1", reflect.TypeOf(false))
	I8    = cty.Capsule("i8", reflect.TypeOf(int8(0)))
	I16   = cty.Capsule("i16", reflect.TypeOf(int16(0)))
	I32   = cty.Capsule("i32", reflect.TypeOf(int32(0)))
	I64   = cty.Capsule("i64", reflect.TypeOf(int64(0)))
	Index = cty.Capsule("index", reflect.TypeOf(int(0)))
	F16   = cty.Capsule("f16", reflect.TypeOf(uint16(0)))
	BF16  = cty.Capsule("bf16", reflect.TypeOf(uint16(0)))
	F32   = cty.Capsule("f32", reflect.TypeOf(float32(0)))
	F64   = cty.Capsule("f64", reflect.TypeOf(float64(0)))
)

var scalars = map[string]cty.Type{
	"i1":    I1,
	"i8":    I8,
	"i16":   I16,
	"i32":   I32,
	"i64":   I64,
	"index": Index,
	"f16":   F16,
	"bf16":  BF16,
	"f32":   F32,
	"f64":   F64,
}

// Lookup returns the scalar type with the given keyword.
func Lookup(name string) (cty.Type, bool) {
	ty, ok := scalars[name]
	return ty, ok
}

// Names returns the scalar type keywords in lexical order.
func Names() []string {
	names := make([]string, 0, len(scalars))
	for name := range scalars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tensor returns the shaped type whose elements are of type elem.
func Tensor(elem cty.Type) cty.Type {
	return cty.List(elem)
}

// IsIRType reports whether ty is a concrete type of the IR universe.
func IsIRType(ty cty.Type) bool {
	switch {
	case ty == cty.NilType:
		return false
	case ty.IsCapsuleType():
		for _, s := range scalars {
			if s.Equals(ty) {
				return true
			}
		}
		return false
	case ty.IsListType():
		return IsIRType(ty.ElementType())
	default:
		return false
	}
}

// Recognize checks that v is a concrete IR type handle and returns it.
func Recognize(v any) (cty.Type, bool) {
	ty, ok := v.(cty.Type)
	if !ok || !IsIRType(ty) {
		return cty.NilType, false
	}
	return ty, true
}

// Display renders ty in the IR's own textual form, e.g. "f32" or "tensor<i8>".
func Display(ty cty.Type) string {
	switch {
	case ty == cty.NilType:
		return "<nil>"
	case ty.IsCapsuleType():
		return ty.FriendlyName()
	case ty.IsListType():
		return "tensor<" + Display(ty.ElementType()) + ">"
	default:
		return ty.FriendlyName()
	}
}

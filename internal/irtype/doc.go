// Package irtype is the boundary to the IR type system. Concrete types are
// represented as cty.Type values: scalar element types (i8, f32, index, ...)
// are process-wide capsule types compared by identity, and shaped types are
// built from them with the tensor(...) constructor.
//
// The op definition core never inspects a type beyond asking Recognize whether
// a value is a concrete IR type and asking Display how to print it.
package irtype

// Package opdef holds the definition of one parametrically-typed op: its name,
// the registry of symbolic type parameters it declares, and the ordered log
// of concrete specializations recorded for it.
//
// A Definition is mutable while it is being built and becomes read-only once
// frozen. All methods are safe for concurrent use.
package opdef

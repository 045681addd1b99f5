/*
Package opref provides a structured reference to an op definition, or to one
of its specializations, based on the canonical format `name` or `name[index]`.

The index is zero-based and counts specializations in declaration order, e.g.
`matmul[1]` is the second specialization of `matmul`.
*/
package opref

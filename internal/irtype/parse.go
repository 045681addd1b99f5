// This file parses textual type expressions (e.g. `f32`, `tensor(i8)`) into
// IR types. HCL files hand over their attribute expressions directly; other
// sources go through Parse.

package irtype

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// Parse parses a type expression from source text.
func Parse(src string) (cty.Type, error) {
	return ParseAt(src, "<type>", hcl.InitialPos)
}

// ParseAt parses a type expression, attributing positions in any error to
// filename starting at pos.
func ParseAt(src, filename string, pos hcl.Pos) (cty.Type, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), filename, pos)
	if diags.HasErrors() {
		return cty.NilType, fmt.Errorf("invalid type expression %q: %w", src, diags)
	}
	return FromExpr(expr)
}

// FromExpr converts an HCL type expression into its IR type.
func FromExpr(expr hcl.Expression) (cty.Type, error) {
	switch v := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(v.Traversal) != 1 {
			return cty.NilType, fmt.Errorf("%w: traversal is not a single type keyword", ErrUnsupportedExpr)
		}
		name := v.Traversal.RootName()
		ty, ok := Lookup(name)
		if !ok {
			return cty.NilType, fmt.Errorf("%w: %q", ErrUnknownType, name)
		}
		return ty, nil

	case *hclsyntax.FunctionCallExpr:
		if v.Name != "tensor" {
			return cty.NilType, fmt.Errorf("%w: unknown type constructor %q", ErrUnsupportedExpr, v.Name)
		}
		if len(v.Args) != 1 {
			return cty.NilType, fmt.Errorf("%w: tensor() requires exactly one element type, got %d", ErrUnsupportedExpr, len(v.Args))
		}
		elem, err := FromExpr(v.Args[0])
		if err != nil {
			return cty.NilType, fmt.Errorf("in tensor element type: %w", err)
		}
		return Tensor(elem), nil

	case nil:
		return cty.NilType, fmt.Errorf("%w: missing type expression", ErrUnsupportedExpr)

	default:
		return cty.NilType, fmt.Errorf("%w: %T", ErrUnsupportedExpr, v)
	}
}

// This file contains the logic for parsing HCL type expressions (e.g.
// `string`, `list(number)`) into the closed schema.TypeDescriptor form.

package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/optsift/internal/ctxlog"
	"github.com/vk/optsift/internal/schema"
)

// typeExprToDescriptor converts an HCL type expression into its descriptor
// equivalent. A nil expression means the option declared no type.
func typeExprToDescriptor(ctx context.Context, expr hcl.Expression) (schema.TypeDescriptor, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		logger.Debug("Type expression is nil, option stays untyped.")
		return schema.Unspecified(), nil
	}

	switch v := expr.(type) {
	case *hclsyntax.FunctionCallExpr:
		logger.Debug("Parsing type expression as a constructor call.", "call", v.Name)
		if len(v.Args) != 1 {
			return schema.Unspecified(), fmt.Errorf("type constructors (array, list) require exactly one argument, got %d", len(v.Args))
		}
		kind, err := primitiveKind(v.Args[0])
		if err != nil {
			return schema.Unspecified(), err
		}
		switch v.Name {
		case "array":
			if kind == schema.KindUnspecified {
				return schema.Unspecified(), fmt.Errorf("array element type cannot be 'any'")
			}
			return schema.ArrayOf(kind), nil
		case "list":
			return schema.ListOf(kind), nil
		default:
			return schema.Unspecified(), fmt.Errorf("unknown type constructor function %q", v.Name)
		}

	case *hclsyntax.ScopeTraversalExpr:
		kind, err := primitiveKind(v)
		if err != nil {
			return schema.Unspecified(), err
		}
		if kind == schema.KindUnspecified {
			// `any` declares no coercion at all.
			return schema.Unspecified(), nil
		}
		return schema.Scalar(kind), nil

	default:
		return schema.Unspecified(), fmt.Errorf("unsupported expression for type definition: %T", v)
	}
}

// primitiveKind resolves a bare type keyword such as `string` or `bool`.
func primitiveKind(expr hcl.Expression) (schema.Kind, error) {
	trav, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok {
		return schema.KindUnspecified, fmt.Errorf("expected a type keyword, got %T", expr)
	}
	if len(trav.Traversal) != 1 {
		return schema.KindUnspecified, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
	}
	switch name := trav.Traversal.RootName(); name {
	case "string":
		return schema.KindString, nil
	case "bool":
		return schema.KindBool, nil
	case "number":
		return schema.KindNumber, nil
	case "any":
		return schema.KindUnspecified, nil
	default:
		return schema.KindUnspecified, fmt.Errorf("unknown primitive type %q", name)
	}
}

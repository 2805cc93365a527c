package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/optsift/internal/ctxlog"
	"github.com/vk/optsift/internal/schema"
	"github.com/zclconf/go-cty/cty"
	ctyconvert "github.com/zclconf/go-cty/cty/convert"
)

// CtyConverter is the default ValueConverter, coercing raw tokens through
// the cty conversion machinery.
type CtyConverter struct{}

// NewCtyConverter creates the default converter.
func NewCtyConverter() *CtyConverter {
	return &CtyConverter{}
}

// Convert implements ValueConverter.
//
// Unspecified targets return the raw token untouched, or an ordered tuple
// of raw tokens when an arity window collected several. Scalar targets
// join a multi-token window with commas before coercing, so a scalar-typed
// option can still absorb a window. Array and list targets coerce each
// token individually.
func (c *CtyConverter) Convert(ctx context.Context, raw []string, target schema.TypeDescriptor) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Converting raw tokens.", "count", len(raw), "target", target.String())

	if len(raw) == 0 {
		return cty.NilVal, nil
	}

	switch target.Form {
	case schema.FormUnspecified:
		if len(raw) == 1 {
			return cty.StringVal(raw[0]), nil
		}
		vals := make([]cty.Value, len(raw))
		for i, tok := range raw {
			vals[i] = cty.StringVal(tok)
		}
		return cty.TupleVal(vals), nil

	case schema.FormScalar:
		joined := cty.StringVal(strings.Join(raw, ","))
		if target.Kind == schema.KindUnspecified || target.Kind == schema.KindString {
			return joined, nil
		}
		out, err := ctyconvert.Convert(joined, target.Kind.CtyType())
		if err != nil {
			return cty.NilVal, fmt.Errorf("cannot convert %q to %s: %w", joined.AsString(), target.Kind, err)
		}
		return out, nil

	case schema.FormArray, schema.FormList:
		elemType := target.Kind.CtyType()
		vals := make([]cty.Value, len(raw))
		for i, tok := range raw {
			if target.Kind == schema.KindUnspecified || target.Kind == schema.KindString {
				vals[i] = cty.StringVal(tok)
				continue
			}
			out, err := ctyconvert.Convert(cty.StringVal(tok), elemType)
			if err != nil {
				return cty.NilVal, fmt.Errorf("cannot convert element %q to %s: %w", tok, target.Kind, err)
			}
			vals[i] = out
		}
		return cty.ListVal(vals), nil

	default:
		return cty.NilVal, fmt.Errorf("unsupported type descriptor form %d", target.Form)
	}
}

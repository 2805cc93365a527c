package convert

import (
	"context"

	"github.com/vk/optsift/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// ValueConverter turns the raw tokens an option collected into a typed
// value for its declared target type descriptor. A failed coercion is
// reported through the error; the returned value is cty.NilVal in that
// case.
type ValueConverter interface {
	Convert(ctx context.Context, raw []string, target schema.TypeDescriptor) (cty.Value, error)
}

package app

import (
	"fmt"
	"strings"

	"github.com/vk/optsift/internal/parser"
	"github.com/zclconf/go-cty/cty"
)

// renderValue formats one resolved option value for terminal output.
func renderValue(res parser.OptionResult) string {
	if !res.HasValue() {
		return "<null>"
	}
	return renderCty(res.Value)
}

func renderCty(val cty.Value) string {
	if val.IsNull() {
		return "<null>"
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return fmt.Sprintf("%q", val.AsString())
	case ty == cty.Bool:
		if val.True() {
			return "true"
		}
		return "false"
	case ty == cty.Number:
		return val.AsBigFloat().Text('g', -1)
	case ty.IsListType() || ty.IsTupleType():
		var parts []string
		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()
			parts = append(parts, renderCty(elem))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return val.GoString()
	}
}

// This file contains the logic for translating decoded HCL blocks into the
// format-agnostic schema model.

package manifest

import (
	"context"
	"fmt"

	"github.com/vk/optsift/internal/ctxlog"
	"github.com/vk/optsift/internal/schema"
	"github.com/zclconf/go-cty/cty"
	ctyconvert "github.com/zclconf/go-cty/cty/convert"
)

// translateCommand converts a decoded command block into the schema model.
func (l *Loader) translateCommand(ctx context.Context, c *commandBlock) (*schema.Command, error) {
	logger := ctxlog.FromContext(ctx).With("command", c.Name)
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Debug("Translating command block to schema model.")

	cmd := &schema.Command{
		Name:    c.Name,
		Summary: c.Summary,
	}
	for _, ob := range c.Options {
		opt, err := l.translateOption(ctx, ob)
		if err != nil {
			return nil, fmt.Errorf("in command %q, option %q: %w", c.Name, ob.Name, err)
		}
		cmd.Options = append(cmd.Options, opt)
	}
	return cmd, nil
}

// translateOption converts a decoded option block into a validated schema
// option.
func (l *Loader) translateOption(ctx context.Context, ob *optionBlock) (*schema.Option, error) {
	desc, err := typeExprToDescriptor(ctx, ob.Type)
	if err != nil {
		return nil, err
	}

	opt := schema.Option{
		Names:       append([]string{ob.Name}, ob.Aliases...),
		Description: ob.Description,
		Type:        desc,
		Required:    ob.Required,
		Position:    ob.Position,
	}

	if ob.Short != "" {
		runes := []rune(ob.Short)
		if len(runes) != 1 {
			return nil, fmt.Errorf("short name %q must be a single character", ob.Short)
		}
		opt.ShortNames = []rune{runes[0]}
	}

	if ob.Arity != nil {
		opt.ArityMin = ob.Arity.Min
		opt.ArityMax = ob.Arity.Max
	}

	if def, err := defaultString(ob); err != nil {
		return nil, err
	} else if def != nil {
		opt.DefaultValue = def
	}

	return schema.NewOption(opt)
}

// defaultString evaluates the `default` expression and renders it as the
// raw string the parser feeds through the value converter when the option
// was never matched.
func defaultString(ob *optionBlock) (*string, error) {
	if ob.Default == nil {
		return nil, nil
	}
	val, diags := ob.Default.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid default expression: %w", diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	strVal, err := ctyconvert.Convert(val, cty.String)
	if err != nil {
		return nil, fmt.Errorf("default value cannot be rendered as a string: %w", err)
	}
	s := strVal.AsString()
	return &s, nil
}

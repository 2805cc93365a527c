package parser

import (
	"context"

	"github.com/vk/optsift/internal/convert"
	"github.com/vk/optsift/internal/ctxlog"
	"github.com/vk/optsift/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Parser resolves token sequences against option schemas. It holds only the
// injected value converter and carries no state across Parse calls.
type Parser struct {
	conv convert.ValueConverter
}

// New creates a parser using the given value converter. A nil converter
// selects the default cty-backed one.
func New(conv convert.ValueConverter) *Parser {
	if conv == nil {
		conv = convert.NewCtyConverter()
	}
	return &Parser{conv: conv}
}

// Parse resolves args against options using the default converter.
func Parse(ctx context.Context, options []*schema.Option, args []string) *Outcome {
	return New(nil).Parse(ctx, options, args)
}

// Parse walks the token stream once, expanding short-flag groups and
// claiming arity windows for matched flags, then binds leftover tokens to
// position-declared options, fills defaults, and sweeps for missing
// required options. Errors accumulate; parsing always runs to completion.
func (p *Parser) Parse(ctx context.Context, options []*schema.Option, args []string) *Outcome {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parse started.", "option_count", len(options), "arg_count", len(args))

	b := &outcomeBuilder{}
	matched := make(map[*schema.Option]bool)

	i := 0
	for i < len(args) {
		token := args[i]
		c := classify(token, options)

		switch c.role {
		case roleLongFlag:
			if c.option == nil {
				logger.Debug("Unrecognised long flag.", "token", token)
				b.addError(ParseError{Kind: ErrUnrecognisedOption, Token: token})
				i++
				continue
			}
			if matched[c.option] {
				// An option is matched at most once per parse; repeated
				// flag occurrences are skipped and their would-be values
				// fall through as positionals.
				i++
				continue
			}
			w := collectWindow(c.option, options, args, i+1)
			matched[c.option] = true
			p.resolve(ctx, b, c.option, w)
			i += 1 + w.consumed

		case roleShortGroup:
			i = p.resolveGroup(ctx, b, c.group, options, args, i, matched)

		default:
			b.addPositional(token)
			i++
		}
	}

	p.bindPositional(ctx, b, options, matched)
	p.applyDefaults(ctx, b, options, matched)

	// Final required-options sweep. An option that was matched but failed
	// its arity is not double-reported as missing, and a default suppresses
	// the error entirely.
	for _, opt := range options {
		if opt.Required && !matched[opt] && opt.DefaultValue == nil {
			b.addError(ParseError{Kind: ErrMissingOption, Option: opt})
		}
	}

	out := b.freeze()
	logger.Debug("Parse finished.",
		"results", len(out.Results),
		"positional", len(out.Positional),
		"errors", len(out.Errors),
	)
	return out
}

// resolve turns one option's claimed window into a result entry, recording
// arity and conversion failures as accumulated errors with a null value.
func (p *Parser) resolve(ctx context.Context, b *outcomeBuilder, opt *schema.Option, w window) {
	if w.err != nil {
		b.addError(*w.err)
		b.addResult(opt, cty.NilVal)
		return
	}
	if len(w.raw) == 0 {
		b.addResult(opt, cty.NilVal)
		return
	}
	val, err := p.conv.Convert(ctx, w.raw, opt.Type)
	if err != nil {
		b.addError(ParseError{Kind: ErrConversion, Option: opt, Cause: err})
		b.addResult(opt, cty.NilVal)
		return
	}
	b.addResult(opt, val)
}

// resolveGroup expands a short-flag group into independent matches at the
// same stream position and returns the cursor after any consumed literals.
//
// When every member is a boolean flag and a single boolean literal follows
// the whole group, that literal is broadcast to every member. Otherwise
// members resolve independently: only the last can claim trailing literals,
// earlier ones resolve with an empty window.
func (p *Parser) resolveGroup(ctx context.Context, b *outcomeBuilder, group []*schema.Option, options []*schema.Option, args []string, pos int, matched map[*schema.Option]bool) int {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Expanding short-flag group.", "token", args[pos], "size", len(group))

	if len(group) > 1 && allBool(group) && pos+1 < len(args) &&
		!isFlagShaped(args[pos+1], options) && isBoolLiteral(args[pos+1]) {
		raw := args[pos+1 : pos+2]
		for _, opt := range group {
			if matched[opt] {
				continue
			}
			matched[opt] = true
			p.resolve(ctx, b, opt, window{raw: raw})
		}
		return pos + 2
	}

	next := pos + 1
	for idx, opt := range group {
		if matched[opt] {
			continue
		}
		matched[opt] = true
		if idx == len(group)-1 {
			w := collectWindow(opt, options, args, pos+1)
			p.resolve(ctx, b, opt, w)
			next = pos + 1 + w.consumed
			continue
		}
		p.resolve(ctx, b, opt, emptyWindow(opt))
	}
	return next
}

// applyDefaults emits converted-default results for options that declare a
// default and were never matched. Defaults produce no errors beyond a
// possible conversion failure.
func (p *Parser) applyDefaults(ctx context.Context, b *outcomeBuilder, options []*schema.Option, matched map[*schema.Option]bool) {
	for _, opt := range options {
		if matched[opt] || opt.DefaultValue == nil {
			continue
		}
		p.resolve(ctx, b, opt, window{raw: []string{*opt.DefaultValue}})
	}
}

func allBool(group []*schema.Option) bool {
	for _, opt := range group {
		if !opt.Type.IsBool() {
			return false
		}
	}
	return true
}

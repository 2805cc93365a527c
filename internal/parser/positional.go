package parser

import (
	"context"
	"sort"

	"github.com/vk/optsift/internal/ctxlog"
	"github.com/vk/optsift/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// bindPositional assigns leftover tokens to options declared with a
// position index. Options are taken in position order and consume from the
// head of the leftover queue under their own arity window. Bound tokens
// remain visible in the positional leftovers: the leftovers reflect raw
// unmapped tokens as typed, the results reflect semantically bound values.
// An option already matched by an explicit flag is never rebound.
func (p *Parser) bindPositional(ctx context.Context, b *outcomeBuilder, options []*schema.Option, matched map[*schema.Option]bool) {
	logger := ctxlog.FromContext(ctx)

	var posOpts []*schema.Option
	for _, opt := range options {
		if opt.Position != nil && !matched[opt] {
			posOpts = append(posOpts, opt)
		}
	}
	if len(posOpts) == 0 {
		return
	}
	sort.SliceStable(posOpts, func(i, j int) bool {
		return *posOpts[i].Position < *posOpts[j].Position
	})

	queue := b.positional
	cursor := 0
	for _, opt := range posOpts {
		available := len(queue) - cursor
		if available == 0 {
			// Nothing left to bind; the option stays unmatched so the
			// required-options sweep can still report it.
			continue
		}

		bounds := boundsFor(opt)
		n := available
		if bounds.bounded && n > bounds.max {
			n = bounds.max
		}
		raw := queue[cursor : cursor+n]
		cursor += n
		matched[opt] = true
		logger.Debug("Bound positional tokens.", "option", opt.DisplayName(), "count", n)

		if bounds.declared && n < bounds.min {
			b.addError(ParseError{Kind: ErrNotEnoughArguments, Option: opt})
			b.addResult(opt, cty.NilVal)
			continue
		}
		p.resolve(ctx, b, opt, window{raw: raw})
	}
}

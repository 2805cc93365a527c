package parser

import (
	"github.com/vk/optsift/internal/schema"
)

// arityBounds is the effective token-count policy for one matched option.
type arityBounds struct {
	min int
	// max is only meaningful when bounded is true; an unbounded maximum
	// consumes greedily.
	max      int
	bounded  bool
	declared bool
}

// boundsFor resolves the declared arity of an option. Absent declarations
// default to a single-token policy: exactly one token for scalar and
// untyped options, zero-or-one for boolean flags, and a greedy window for
// array and list targets since their whole point is aggregation.
func boundsFor(opt *schema.Option) arityBounds {
	if opt.ArityMin != nil || opt.ArityMax != nil {
		b := arityBounds{declared: true}
		if opt.ArityMin != nil {
			b.min = *opt.ArityMin
		}
		if opt.ArityMax != nil {
			b.max = *opt.ArityMax
			b.bounded = true
		}
		return b
	}
	switch {
	case opt.Type.IsBool():
		return arityBounds{min: 0, max: 1, bounded: true}
	case opt.Type.Form == schema.FormArray || opt.Type.Form == schema.FormList:
		return arityBounds{min: 1}
	default:
		return arityBounds{min: 1, max: 1, bounded: true}
	}
}

// window is the outcome of resolving one option's arity at a stream
// position: the consumed raw tokens, how many tokens were eaten, and an
// arity violation if one was detected. A violation forces a null value but
// the option still appears in the results.
type window struct {
	raw      []string
	consumed int
	err      *ParseError
}

// collectWindow greedily claims literal tokens for opt starting at args
// position start, stopping at the next flag-shaped token or end of stream.
// Arity errors are only raised for explicitly declared bounds; defaulted
// windows under-fill silently and resolve to a null value.
func collectWindow(opt *schema.Option, options []*schema.Option, args []string, start int) window {
	available := 0
	for i := start; i < len(args) && !isFlagShaped(args[i], options); i++ {
		available++
	}

	b := boundsFor(opt)

	// Boolean flags with defaulted arity consume an explicit true/false
	// literal when one directly follows, resolving to true otherwise. Any
	// other literal is left for positional binding.
	if !b.declared && opt.Type.IsBool() {
		if available > 0 && isBoolLiteral(args[start]) {
			return window{raw: args[start : start+1], consumed: 1}
		}
		return window{raw: []string{"true"}}
	}

	if b.declared && b.bounded && available > b.max {
		// Enough literals exist for a greedy read to overflow the declared
		// maximum. The excess stays unconsumed for later binding.
		return window{
			raw:      args[start : start+b.max],
			consumed: b.max,
			err:      &ParseError{Kind: ErrTooManyArguments, Option: opt},
		}
	}

	n := available
	if b.bounded && n > b.max {
		n = b.max
	}
	w := window{raw: args[start : start+n], consumed: n}
	if b.declared && n < b.min {
		w.err = &ParseError{Kind: ErrNotEnoughArguments, Option: opt}
	}
	return w
}

// emptyWindow resolves an option that shares a stream position with others
// in a short-flag group but has no literal tokens of its own.
func emptyWindow(opt *schema.Option) window {
	b := boundsFor(opt)
	if !b.declared {
		if opt.Type.IsBool() {
			return window{raw: []string{"true"}}
		}
		return window{}
	}
	if b.min > 0 {
		return window{err: &ParseError{Kind: ErrNotEnoughArguments, Option: opt}}
	}
	return window{}
}

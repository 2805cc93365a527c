package parser

import (
	"github.com/vk/optsift/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// OptionResult pairs a matched option with its resolved value. The value is
// cty.NilVal when resolution failed (arity violation or conversion error),
// so callers can distinguish "present but malformed" from "absent". The
// slice position reflects encounter order, not schema declaration order.
type OptionResult struct {
	Option *schema.Option
	Value  cty.Value
}

// HasValue reports whether resolution produced a typed value.
func (r OptionResult) HasValue() bool {
	return r.Value != cty.NilVal
}

// Outcome is the frozen product of one Parse call: matched-option results
// in encounter order, leftover raw positional tokens in original order, and
// accumulated errors in discovery order. It is never mutated after being
// returned and has no lifecycle beyond the call that produced it.
type Outcome struct {
	Results    []OptionResult
	Positional []string
	Errors     []ParseError
}

// outcomeBuilder is the single-call mutable working state behind a parse.
// It is owned by exactly one Parse invocation and frozen on return.
type outcomeBuilder struct {
	results    []OptionResult
	positional []string
	errors     []ParseError
}

func (b *outcomeBuilder) addResult(opt *schema.Option, val cty.Value) {
	b.results = append(b.results, OptionResult{Option: opt, Value: val})
}

func (b *outcomeBuilder) addPositional(token string) {
	b.positional = append(b.positional, token)
}

func (b *outcomeBuilder) addError(err ParseError) {
	b.errors = append(b.errors, err)
}

func (b *outcomeBuilder) freeze() *Outcome {
	return &Outcome{
		Results:    b.results,
		Positional: b.positional,
		Errors:     b.errors,
	}
}

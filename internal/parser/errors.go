package parser

import (
	"fmt"

	"github.com/vk/optsift/internal/schema"
)

// ErrorKind discriminates the closed set of parse error variants.
type ErrorKind int

const (
	// ErrUnrecognisedOption marks a flag-shaped token not in the schema.
	ErrUnrecognisedOption ErrorKind = iota + 1
	// ErrMissingOption marks a required option never matched and without
	// a default.
	ErrMissingOption
	// ErrNotEnoughArguments marks a matched option whose consumed token
	// count fell below its declared minimum arity.
	ErrNotEnoughArguments
	// ErrTooManyArguments marks a matched option whose declared maximum
	// arity would be overflowed by the available literal tokens.
	ErrTooManyArguments
	// ErrConversion marks raw tokens the value converter could not coerce
	// to the declared type.
	ErrConversion
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnrecognisedOption:
		return "unrecognised option"
	case ErrMissingOption:
		return "missing option"
	case ErrNotEnoughArguments:
		return "not enough arguments"
	case ErrTooManyArguments:
		return "too many arguments"
	case ErrConversion:
		return "conversion failed"
	default:
		return "unknown"
	}
}

// ParseError is one accumulated, non-fatal parse error. It carries the
// offending option or token as data; no error is ever thrown out of Parse.
type ParseError struct {
	Kind ErrorKind
	// Option is the schema entry involved, nil for unrecognised tokens.
	Option *schema.Option
	// Token is the offending raw token for unrecognised options.
	Token string
	// Cause holds the converter's failure for conversion errors.
	Cause error
}

// Error implements the error interface.
func (e ParseError) Error() string {
	switch e.Kind {
	case ErrUnrecognisedOption:
		return fmt.Sprintf("unrecognised option %q", e.Token)
	case ErrMissingOption:
		return fmt.Sprintf("missing mandatory option %s", e.Option.DisplayName())
	case ErrNotEnoughArguments:
		return fmt.Sprintf("not enough arguments for option %s", e.Option.DisplayName())
	case ErrTooManyArguments:
		return fmt.Sprintf("too many arguments for option %s", e.Option.DisplayName())
	case ErrConversion:
		return fmt.Sprintf("illegal value for option %s: %v", e.Option.DisplayName(), e.Cause)
	default:
		return "unknown parse error"
	}
}

// Unwrap exposes the converter's failure for errors.Is / errors.As.
func (e ParseError) Unwrap() error {
	return e.Cause
}

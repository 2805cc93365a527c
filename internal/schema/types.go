package schema

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Form is the shape of an option's declared target type.
type Form int

const (
	// FormUnspecified means no coercion at all: the parser hands back the
	// raw token (or a raw sequence when an arity window collected several).
	FormUnspecified Form = iota
	// FormScalar coerces the collected tokens into a single value of Kind.
	// A multi-token window is joined with commas before coercion.
	FormScalar
	// FormArray coerces each collected token to Kind individually.
	FormArray
	// FormList is like FormArray but tolerates an unspecified element kind,
	// in which case the tokens are kept as strings.
	FormList
)

// Kind is the element kind a scalar or collection form coerces to.
type Kind int

const (
	KindUnspecified Kind = iota
	KindString
	KindBool
	KindNumber
)

// CtyType returns the cty type this kind coerces into. Unspecified kinds
// map to string since raw tokens are strings already.
func (k Kind) CtyType() cty.Type {
	switch k {
	case KindBool:
		return cty.Bool
	case KindNumber:
		return cty.Number
	default:
		return cty.String
	}
}

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	default:
		return "any"
	}
}

// TypeDescriptor is the closed tagged description of an option's target
// type. The zero value means "unspecified": no coercion is performed.
type TypeDescriptor struct {
	Form Form
	Kind Kind
}

// Unspecified returns the descriptor for an option with no declared type.
func Unspecified() TypeDescriptor {
	return TypeDescriptor{}
}

// Scalar returns a descriptor coercing the collected tokens to one value.
func Scalar(k Kind) TypeDescriptor {
	return TypeDescriptor{Form: FormScalar, Kind: k}
}

// ArrayOf returns a descriptor coercing each token to k.
func ArrayOf(k Kind) TypeDescriptor {
	return TypeDescriptor{Form: FormArray, Kind: k}
}

// ListOf returns a descriptor assembling tokens into an ordered sequence,
// coercing elements when k is specified.
func ListOf(k Kind) TypeDescriptor {
	return TypeDescriptor{Form: FormList, Kind: k}
}

// IsUnspecified reports whether no coercion was declared.
func (d TypeDescriptor) IsUnspecified() bool {
	return d.Form == FormUnspecified
}

// IsBool reports whether the option behaves as a boolean flag, which
// changes its default arity to zero-or-one token.
func (d TypeDescriptor) IsBool() bool {
	return d.Form == FormScalar && d.Kind == KindBool
}

func (d TypeDescriptor) String() string {
	switch d.Form {
	case FormScalar:
		return d.Kind.String()
	case FormArray:
		return fmt.Sprintf("array(%s)", d.Kind)
	case FormList:
		return fmt.Sprintf("list(%s)", d.Kind)
	default:
		return "unspecified"
	}
}

package schema

import (
	"fmt"
	"strings"
)

// Option declares a single flag or positional parameter a command accepts.
// Its identity is the declared names, short names, and position; within one
// parse call an option is matched at most once. Instances are read-only
// once handed to the parser.
type Option struct {
	// Names holds the long names, matched as --name.
	Names []string
	// ShortNames holds single-character names, matched as -c and
	// combinable into groups such as -abc.
	ShortNames []rune
	// Description documents the option. It plays no role in parsing.
	Description string
	// Type drives value coercion. The zero value means no coercion.
	Type TypeDescriptor
	// Required marks options that must be matched or defaulted.
	Required bool
	// DefaultValue, when set, is converted and used only if the option was
	// never matched during the parse.
	DefaultValue *string
	// Position, when set, makes the option eligible for binding against
	// the stream of otherwise-unclaimed tokens, enabling flagless use.
	Position *int
	// ArityMin and ArityMax bound how many literal tokens the option
	// consumes. When both are absent a single-token policy applies (zero
	// or one for boolean flags).
	ArityMin *int
	ArityMax *int
}

// NewOption validates the declaration and returns an immutable-by-convention
// schema entry. Invalid declarations are programmer errors.
func NewOption(opt Option) (*Option, error) {
	if len(opt.Names) == 0 && len(opt.ShortNames) == 0 && opt.Position == nil {
		return nil, fmt.Errorf("option must declare at least one name, short name, or position")
	}
	for _, n := range opt.Names {
		if n == "" || strings.HasPrefix(n, "-") {
			return nil, fmt.Errorf("invalid long name %q: must be non-empty and carry no dash prefix", n)
		}
	}
	if opt.Position != nil && *opt.Position < 0 {
		return nil, fmt.Errorf("position must be non-negative, got %d", *opt.Position)
	}
	if opt.ArityMin != nil && *opt.ArityMin < 0 {
		return nil, fmt.Errorf("arity min must be non-negative, got %d", *opt.ArityMin)
	}
	if opt.ArityMax != nil && *opt.ArityMax < 0 {
		return nil, fmt.Errorf("arity max must be non-negative, got %d", *opt.ArityMax)
	}
	if opt.ArityMin != nil && opt.ArityMax != nil && *opt.ArityMin > *opt.ArityMax {
		return nil, fmt.Errorf("arity min %d exceeds max %d", *opt.ArityMin, *opt.ArityMax)
	}
	return &opt, nil
}

// HasLongName reports whether name is one of the option's long names.
func (o *Option) HasLongName(name string) bool {
	for _, n := range o.Names {
		if n == name {
			return true
		}
	}
	return false
}

// HasShortName reports whether c is one of the option's short names.
func (o *Option) HasShortName(c rune) bool {
	for _, s := range o.ShortNames {
		if s == c {
			return true
		}
	}
	return false
}

// DisplayName returns the option's primary name for diagnostics, preferring
// the first long name, then the first short name, then the position.
func (o *Option) DisplayName() string {
	if len(o.Names) > 0 {
		return "--" + o.Names[0]
	}
	if len(o.ShortNames) > 0 {
		return "-" + string(o.ShortNames[0])
	}
	if o.Position != nil {
		return fmt.Sprintf("positional %d", *o.Position)
	}
	return "<unnamed>"
}

// Command groups the options one named command accepts.
type Command struct {
	Name    string
	Summary string
	Options []*Option
}

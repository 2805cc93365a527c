package parser

import (
	"strings"
	"unicode"

	"github.com/vk/optsift/internal/schema"
)

// tokenRole labels what a single raw token is at its stream position.
type tokenRole int

const (
	// roleLiteral covers ordinary tokens: values for an open arity window,
	// or candidate positionals otherwise.
	roleLiteral tokenRole = iota
	// roleLongFlag covers --name tokens, whether or not the name resolves.
	roleLongFlag
	// roleShortGroup covers -abc tokens where every character is a
	// declared short name.
	roleShortGroup
)

// classification is the result of classifying one token against a schema.
type classification struct {
	role tokenRole
	// option is the resolved option for a recognised long flag.
	option *schema.Option
	// name is the bare long name, with the dashes stripped.
	name string
	// group holds the expanded options of a short-flag group, in
	// left-to-right character order.
	group []*schema.Option
}

// classify labels the token at the cursor. Ambiguous negative-number
// tokens such as -1 are always literals: a leading digit after the dash
// disqualifies the token from being a flag even when the digit collides
// with a declared short name.
func classify(token string, options []*schema.Option) classification {
	if strings.HasPrefix(token, "--") && len(token) > 2 {
		name := token[2:]
		return classification{
			role:   roleLongFlag,
			name:   name,
			option: lookupLong(options, name),
		}
	}

	if strings.HasPrefix(token, "-") && len(token) > 1 {
		chars := []rune(token[1:])
		if unicode.IsDigit(chars[0]) {
			return classification{role: roleLiteral}
		}
		group := make([]*schema.Option, 0, len(chars))
		for _, c := range chars {
			opt := lookupShort(options, c)
			if opt == nil {
				// Not every character is a declared short name, so the
				// token is not a group. It stays an ordinary token.
				return classification{role: roleLiteral}
			}
			group = append(group, opt)
		}
		return classification{role: roleShortGroup, group: group}
	}

	return classification{role: roleLiteral}
}

// isFlagShaped reports whether a token would stop an arity window: any
// long-flag attempt or short-flag group counts, a negative number does not.
func isFlagShaped(token string, options []*schema.Option) bool {
	return classify(token, options).role != roleLiteral
}

func lookupLong(options []*schema.Option, name string) *schema.Option {
	for _, opt := range options {
		if opt.HasLongName(name) {
			return opt
		}
	}
	return nil
}

func lookupShort(options []*schema.Option, c rune) *schema.Option {
	for _, opt := range options {
		if opt.HasShortName(c) {
			return opt
		}
	}
	return nil
}

// isBoolLiteral reports whether a token is an explicit boolean value that
// a boolean flag may consume.
func isBoolLiteral(token string) bool {
	return token == "true" || token == "false"
}

// Package convert defines the value-conversion collaborator the parser
// hands raw tokens to, plus the default implementation built on the cty
// type system.
//
// The parser never interprets conversion failures beyond recording them;
// implementations must be synchronous and side-effect free.
package convert

// Package schema defines the format-agnostic option model that commands
// declare and the parser resolves against, along with the closed type
// descriptor used for value coercion.
//
// A schema is constructed once per command definition and is strictly
// read-only during parsing. Concrete sources of schemas, such as the HCL
// manifest loader, live in separate packages.
package schema

// Package parser is the resolution engine between what the user typed and
// what a command handler receives. It matches a flat token sequence against
// a declared option schema, enforces arity windows, binds leftover tokens
// to position-indexed options, and accumulates structured errors instead of
// aborting.
//
// A single Parse call is a pure synchronous computation over read-only
// inputs: the schema is never mutated, nothing is cached across calls, and
// the returned Outcome is frozen before it is handed back. Concurrent
// Parse calls with independent inputs are safe.
package parser

// Package registry holds the named command schemas one application
// instance knows about.
//
// It is populated once during startup from loaded manifests (or directly
// by Go code) and is read-only afterwards, so command dispatch during a
// session needs no locking.
package registry

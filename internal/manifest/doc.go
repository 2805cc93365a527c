// Package manifest loads command and option declarations from HCL files
// and translates them into the format-agnostic schema model.
//
// A manifest declares commands with option blocks:
//
//	command "greet" {
//	  summary = "Print a greeting."
//
//	  option "name" {
//	    short    = "n"
//	    type     = string
//	    required = true
//	    position = 0
//	  }
//	}
//
// Types use HCL type expression syntax: string, bool, number, any, and the
// constructors array(...) and list(...).
package manifest

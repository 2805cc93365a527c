// Package cli is responsible for parsing the frontend's own bootstrap
// flags, validating user input, and handling process-level concerns like
// exit codes. The tokens after the command name are passed untouched to the
// resolution engine.
package cli

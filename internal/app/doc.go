// Package app contains the frontend application logic: it wires the
// manifest loader, command registry, and parsing engine together and
// renders parse outcomes, decoupled from any specific entrypoint.
package app

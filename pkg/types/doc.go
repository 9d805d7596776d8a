// Package types holds the contracts shared between the host runner and its
// directives: the Directive capability, the four-level Logger a directive
// reports through, the Runner that executes shell commands, and the Context
// that exposes directive defaults.
//
// Directives are plain values composed into a registry owned by the host.
// Nothing in this package holds global state.
package types

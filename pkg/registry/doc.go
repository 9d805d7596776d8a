// Package registry holds the directives a host run can dispatch to.
//
// Registration order is kept: when two directives accept the same name, the
// first one registered wins, and List reports names in registration order.
package registry

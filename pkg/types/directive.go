package types

import "context"

// Directive is a named operation a plugin advertises it can perform.
// The host checks CanHandle before calling Handle.
type Directive interface {
	// Name returns the literal token this directive owns
	Name() string

	// CanHandle reports whether name is the token this directive owns
	CanHandle(name string) bool

	// Handle runs the directive with its raw task-file data.
	// The boolean is the directive's verdict; the error is reserved for
	// conditions that must abort the whole run.
	Handle(ctx context.Context, name string, data interface{}) (bool, error)
}

// DirectiveFactory builds a directive bound to a run context
type DirectiveFactory func(rc *RunContext) (Directive, error)

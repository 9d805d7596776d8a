package types

import "context"

// CommandResult is the outcome of one shell command
type CommandResult struct {
	Command string
	// Output is stdout and stderr interleaved into one stream
	Output   string
	ExitCode int
}

// Runner executes a shell command line and blocks until the process exits
// and its combined output is fully drained. A non-zero exit is not an error;
// the error return is reserved for failures to start the process.
type Runner interface {
	Run(ctx context.Context, command string) (CommandResult, error)
}

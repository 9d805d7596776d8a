package testutil

import (
	"context"
	"sync"

	"github.com/arthur-debert/dotapt/pkg/types"
)

// FakeRunner answers commands from a script and records every call
type FakeRunner struct {
	mu sync.Mutex

	// Outputs maps an exact command line to its combined output
	Outputs map[string]string
	// ExitCodes maps an exact command line to its exit status
	ExitCodes map[string]int
	// Errors maps an exact command line to a start failure
	Errors map[string]error
	// Fallback answers commands missing from Outputs, when set
	Fallback func(command string) string

	commands []string
}

// NewFakeRunner creates a runner with empty scripts
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Outputs:   make(map[string]string),
		ExitCodes: make(map[string]int),
		Errors:    make(map[string]error),
	}
}

// On scripts the output of command and returns the runner for chaining
func (f *FakeRunner) On(command, output string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Outputs[command] = output
	return f
}

// Run records command and replays its scripted result
func (f *FakeRunner) Run(ctx context.Context, command string) (types.CommandResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.commands = append(f.commands, command)
	res := types.CommandResult{Command: command, ExitCode: f.ExitCodes[command]}

	if err, ok := f.Errors[command]; ok {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	if out, ok := f.Outputs[command]; ok {
		res.Output = out
	} else if f.Fallback != nil {
		res.Output = f.Fallback(command)
	}
	return res, nil
}

// Commands returns the command lines run so far, in order
func (f *FakeRunner) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.commands))
	copy(out, f.commands)
	return out
}

// CountOf returns how many times command was run
func (f *FakeRunner) CountOf(command string) int {
	n := 0
	for _, c := range f.Commands() {
		if c == command {
			n++
		}
	}
	return n
}

var _ types.Runner = (*FakeRunner)(nil)

package shell

import (
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/logging"
	"github.com/arthur-debert/dotapt/pkg/types"
)

// DefaultShell interprets command lines when none is configured
const DefaultShell = "sh"

// Runner executes command lines with "<shell> -c"
type Runner struct {
	shell  string
	env    []string
	logger zerolog.Logger
}

// Option configures a Runner
type Option func(*Runner)

// WithEnv appends KEY=VALUE pairs to the inherited environment
func WithEnv(pairs ...string) Option {
	return func(r *Runner) {
		r.env = append(r.env, pairs...)
	}
}

// NewRunner creates a runner for the given shell; empty means DefaultShell
func NewRunner(shell string, opts ...Option) *Runner {
	if strings.TrimSpace(shell) == "" {
		shell = DefaultShell
	}
	r := &Runner{
		shell:  shell,
		logger: logging.GetLogger("shell.runner"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes command and returns its combined stdout and stderr
func (r *Runner) Run(ctx context.Context, command string) (types.CommandResult, error) {
	result := types.CommandResult{Command: command}
	if strings.TrimSpace(command) == "" {
		return result, errors.New(errors.ErrInvalidInput, "command cannot be empty")
	}

	logging.LogCommand(r.logger, command)
	done := logging.LogOperationStart(r.logger, command)
	defer done()

	cmd := exec.CommandContext(ctx, r.shell, "-c", command)
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}

	// CombinedOutput waits for the process and closes the pipe on every path
	out, err := cmd.CombinedOutput()
	result.Output = string(out)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return result, errors.Wrapf(ctxErr, errors.ErrCommandAborted, "command interrupted: %s", command).
			WithDetail("command", command)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return result, errors.Wrapf(err, errors.ErrCommandSpawn, "failed to start command: %s", command).
				WithDetail("command", command).
				WithDetail("shell", r.shell)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	r.logger.Debug().
		Str("command", command).
		Int("exitCode", result.ExitCode).
		Int("outputBytes", len(out)).
		Msg("Command finished")

	return result, nil
}

var _ types.Runner = (*Runner)(nil)

package shell

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/logging"
	"github.com/arthur-debert/dotapt/pkg/types"
)

// DryRunRunner records command lines without executing them.
// Every command "succeeds" with empty output.
type DryRunRunner struct {
	logger   zerolog.Logger
	Commands []string
}

// NewDryRunRunner creates a dry-run runner
func NewDryRunRunner() *DryRunRunner {
	return &DryRunRunner{logger: logging.GetLogger("shell.dryrun")}
}

// Run logs the command and returns an empty result
func (r *DryRunRunner) Run(ctx context.Context, command string) (types.CommandResult, error) {
	if err := ctx.Err(); err != nil {
		return types.CommandResult{Command: command}, errors.Wrapf(err, errors.ErrCommandAborted, "command interrupted: %s", command)
	}
	r.Commands = append(r.Commands, command)
	r.logger.Info().Str("command", command).Msg("Dry run mode - command would be executed")
	return types.CommandResult{Command: command}, nil
}

var _ types.Runner = (*DryRunRunner)(nil)

package dotapt

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/ui/styles"
)

// Exit codes returned by Execute
const (
	ExitOK      = 0
	ExitFailed  = 1
	ExitUsage   = 2
	ExitCommand = 3
)

// Execute runs the CLI with args and returns the process exit code
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}

	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, styles.Get("Error").Render(fmt.Sprintf("Error: %v", err)))
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by a command to an exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, errRunFailed):
		return ExitFailed
	case errors.IsErrorCode(err, errors.ErrCommandSpawn), errors.IsErrorCode(err, errors.ErrCommandAborted):
		return ExitCommand
	default:
		return ExitUsage
	}
}

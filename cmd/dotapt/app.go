package dotapt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/dotapt/pkg/aptget"
	"github.com/arthur-debert/dotapt/pkg/config"
	"github.com/arthur-debert/dotapt/pkg/dispatcher"
	"github.com/arthur-debert/dotapt/pkg/logging"
	"github.com/arthur-debert/dotapt/pkg/shell"
	"github.com/arthur-debert/dotapt/pkg/taskfile"
	"github.com/arthur-debert/dotapt/pkg/types"
	"github.com/arthur-debert/dotapt/pkg/ui"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	dryRun     bool
	configPath string
	format     string
}

// app is what a command needs once flags and config are resolved
type app struct {
	opts     *globalOptions
	settings *config.Settings
	renderer ui.Renderer
	out      io.Writer
}

func (o *globalOptions) newApp(cmd *cobra.Command) (*app, error) {
	settings, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	name := settings.Output.Format
	if o.format != "" {
		name = o.format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, fmt.Errorf(MsgErrBadFormat, err)
	}

	out := cmd.OutOrStdout()
	renderer, err := ui.NewRenderer(format, out)
	if err != nil {
		return nil, err
	}

	return &app{opts: o, settings: settings, renderer: renderer, out: out}, nil
}

func (a *app) runner() types.Runner {
	if a.opts.dryRun {
		return shell.NewDryRunRunner()
	}
	return shell.NewRunner(a.settings.Apt.Shell)
}

func (a *app) newDispatcher() (*dispatcher.Dispatcher, *types.RunContext, error) {
	rc := types.NewRunContext(logging.NewDirectiveLogger(logging.GetLogger("directive")), a.runner())
	rc.DryRun = a.opts.dryRun

	commands := aptget.Commands{
		PackageManager: a.settings.Apt.PackageManager,
		RepositoryTool: a.settings.Apt.RepositoryTool,
	}
	d, err := dispatcher.New(rc, aptget.Factory(
		aptget.WithCommands(commands),
		aptget.WithStrictFormat(a.settings.Apt.StrictFormat),
	))
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrSetup, err)
	}
	return d, rc, nil
}

// run dispatches tasks, renders the summary and turns a failed run into
// errRunFailed
func (a *app) run(ctx context.Context, source string, tasks []taskfile.Task) error {
	d, _, err := a.newDispatcher()
	if err != nil {
		return err
	}

	summary, runErr := d.Run(ctx, source, tasks)
	if err := a.renderer.RenderSummary(summary); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	if !summary.Success {
		return errRunFailed
	}
	return nil
}

var errRunFailed = errors.New(MsgErrRunFailed)

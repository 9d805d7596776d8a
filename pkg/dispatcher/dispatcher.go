// Package dispatcher runs parsed task files against the registered
// directives. It owns the host side of the plugin contract: handing out the
// run context, merging defaults and collecting reports.
package dispatcher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/logging"
	"github.com/arthur-debert/dotapt/pkg/registry"
	"github.com/arthur-debert/dotapt/pkg/taskfile"
	"github.com/arthur-debert/dotapt/pkg/types"
)

// Dispatcher routes task entries to directives
type Dispatcher struct {
	rc         *types.RunContext
	directives *registry.Directives
	log        zerolog.Logger
}

// New builds every directive from factories against rc and registers them
// in order
func New(rc *types.RunContext, factories ...types.DirectiveFactory) (*Dispatcher, error) {
	if rc == nil {
		return nil, errors.New(errors.ErrInvalidInput, "dispatcher requires a run context")
	}
	if rc.Logger == nil {
		rc.Logger = logging.ForDirective("dispatcher")
	}

	d := &Dispatcher{
		rc:         rc,
		directives: registry.NewDirectives(),
		log:        logging.GetLogger("dispatcher"),
	}
	for _, factory := range factories {
		directive, err := factory(rc)
		if err != nil {
			return nil, err
		}
		if err := d.directives.Add(directive); err != nil {
			return nil, err
		}
		d.log.Debug().Str("directive", directive.Name()).Msg("Registered directive")
	}
	return d, nil
}

// Directives lists registered directive names
func (d *Dispatcher) Directives() []string {
	return d.directives.Names()
}

// Run executes every task in order. A false verdict fails the run but later
// entries still execute; an error stops the run and is returned together
// with the reports gathered so far.
func (d *Dispatcher) Run(ctx context.Context, source string, tasks []taskfile.Task) (types.RunSummary, error) {
	summary := types.RunSummary{
		Source:  source,
		DryRun:  d.rc.DryRun,
		Success: true,
	}

	previous := d.rc.Reports
	d.rc.Reports = func(r types.Report) {
		summary.Reports = append(summary.Reports, r)
		if previous != nil {
			previous(r)
		}
	}
	defer func() { d.rc.Reports = previous }()

	d.log.Info().Str("source", source).Int("tasks", len(tasks)).Bool("dryRun", d.rc.DryRun).Msg("Starting run")

	for i, task := range tasks {
		for _, entry := range task.Entries {
			ok, err := d.Dispatch(ctx, entry)
			if err != nil {
				summary.Success = false
				d.log.Error().Err(err).Int("task", i+1).Str("directive", entry.Directive).Msg("Run aborted")
				return summary, err
			}
			if !ok {
				summary.Success = false
			}
		}
	}

	d.log.Info().Bool("success", summary.Success).Int("reports", len(summary.Reports)).Msg("Run finished")
	return summary, nil
}

// Dispatch runs a single entry and returns the directive's verdict
func (d *Dispatcher) Dispatch(ctx context.Context, entry taskfile.Entry) (bool, error) {
	if entry.Directive == taskfile.DefaultsDirective {
		return d.applyDefaults(entry.Data), nil
	}

	directive, err := d.directives.Lookup(entry.Directive)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrDirectiveUnknown) {
			d.rc.Logger.Error(fmt.Sprintf("Action %s not handled", entry.Directive))
			return false, nil
		}
		return false, err
	}

	d.log.Debug().Str("directive", entry.Directive).Str("plugin", directive.Name()).Msg("Dispatching")
	return directive.Handle(ctx, entry.Directive, entry.Data)
}

func (d *Dispatcher) applyDefaults(data interface{}) bool {
	values, ok := data.(map[string]interface{})
	if !ok {
		d.rc.Logger.Error("Defaults must be a mapping")
		return false
	}
	d.rc.SetDefaults(values)
	d.log.Debug().Int("namespaces", len(values)).Msg("Applied defaults")
	return true
}

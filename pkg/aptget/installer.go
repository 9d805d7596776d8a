package aptget

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/logging"
	"github.com/arthur-debert/dotapt/pkg/types"
)

// DirectiveName is the task-file key this installer owns
const DirectiveName = "apt-get"

// Installer is the apt-get directive
type Installer struct {
	rc       *types.RunContext
	commands Commands
	rules    []Rule
	strict   bool
	log      types.Logger
	debug    zerolog.Logger
}

// Option configures an Installer
type Option func(*Installer)

// WithCommands overrides the package manager and repository tool binaries
func WithCommands(c Commands) Option {
	return func(i *Installer) { i.commands = c }
}

// WithRules replaces the classification table
func WithRules(rules []Rule) Option {
	return func(i *Installer) { i.rules = rules }
}

// WithStrictFormat makes malformed entries count as failures
func WithStrictFormat(strict bool) Option {
	return func(i *Installer) { i.strict = strict }
}

// New creates an installer bound to a run context. The context supplies the
// runner, the logger and the directive defaults.
func New(rc *types.RunContext, opts ...Option) (*Installer, error) {
	if rc == nil || rc.Runner == nil {
		return nil, errors.New(errors.ErrInvalidInput, "apt-get installer requires a runner")
	}
	i := &Installer{
		rc:       rc,
		commands: DefaultCommands(),
		rules:    DefaultRules,
		log:      rc.Logger,
		debug:    logging.GetLogger("aptget"),
	}
	if i.log == nil {
		i.log = logging.ForDirective(DirectiveName)
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// Factory returns a DirectiveFactory building installers with opts
func Factory(opts ...Option) types.DirectiveFactory {
	return func(rc *types.RunContext) (types.Directive, error) {
		i, err := New(rc, opts...)
		if err != nil {
			return nil, err
		}
		return i, nil
	}
}

// Name returns the directive name
func (i *Installer) Name() string {
	return DirectiveName
}

// CanHandle reports whether directive is "apt-get"
func (i *Installer) CanHandle(directive string) bool {
	return directive == DirectiveName
}

// Handle installs the packages listed in data
func (i *Installer) Handle(ctx context.Context, directive string, data interface{}) (bool, error) {
	if !i.CanHandle(directive) {
		return false, errors.Newf(errors.ErrDirectiveUnsupported, "Apt-get cannot handle directive %s", directive).
			WithDetail("directive", directive)
	}

	specs, ok := asList(data)
	if !ok {
		i.log.Error("Incorrect format")
		return false, nil
	}

	report, err := i.Run(ctx, specs)
	if err != nil {
		return false, err
	}
	i.rc.Report(report)
	return report.Success, nil
}

// Process installs specs and returns the overall verdict
func (i *Installer) Process(ctx context.Context, specs []interface{}) (bool, error) {
	report, err := i.Run(ctx, specs)
	if err != nil {
		return false, err
	}
	return report.Success, nil
}

// Run installs specs in order and returns the full report. An error is
// returned only when a command could not be run at all.
func (i *Installer) Run(ctx context.Context, specs []interface{}) (types.Report, error) {
	done := logging.LogOperationStart(i.debug, "apt-get directive")
	defer done()

	report := types.Report{Directive: DirectiveName}

	// Fetched for parity with other directives; no key is acted on yet
	defaults := i.rc.DefaultsFor(DirectiveName)
	i.debug.Debug().Int("keys", len(defaults)).Msg("Loaded apt-get defaults")

	tally := NewTally()

	if err := i.refreshIndex(ctx); err != nil {
		return report, err
	}

	for _, raw := range specs {
		spec, err := ParseSpec(raw)
		if err != nil {
			i.log.Error("Incorrect format")
			i.debug.Debug().Err(err).Msg("Skipping malformed package entry")
			report.Malformed++
			if i.strict {
				tally.Add(Malformed)
			}
			continue
		}

		if spec.HasRepository() {
			i.log.LowInfo(fmt.Sprintf("Adding PPA: '%s'", spec.Repository))
			if err := i.addRepository(ctx, spec.Repository); err != nil {
				return report, err
			}
		}

		i.log.LowInfo(fmt.Sprintf("Handling package: '%s'...", spec.Name))
		outcome, err := i.classify(ctx, spec.Name)
		if err != nil {
			return report, err
		}
		tally.Add(outcome)

		switch {
		case !outcome.Successful():
			i.log.Error(fmt.Sprintf("Could not install package: '%s'", spec.Name))
		case outcome == UpToDate:
			i.log.Info(fmt.Sprintf("Package is already up to date: '%s'", spec.Name))
		case outcome == Installed:
			i.log.Info(fmt.Sprintf("Installed package: '%s'", spec.Name))
		}

		report.Packages = append(report.Packages, types.PackageResult{
			Name:       spec.Name,
			Repository: spec.Repository,
			Outcome:    outcome.Label(),
			Success:    outcome.Successful(),
		})
	}

	report.Success = tally.AllSuccessful()
	if report.Success {
		i.log.Info("All packages installed successfully")
	}

	for _, o := range tally.Outcomes() {
		line := fmt.Sprintf("%d %s", tally.Count(o), o.Label())
		if o.Successful() {
			i.log.Info(line)
		} else {
			i.log.Error(line)
		}
	}

	report.Tally = tally.Entries()
	return report, nil
}

// classify installs pkg and maps the tool's output to an outcome
func (i *Installer) classify(ctx context.Context, pkg string) (Outcome, error) {
	res, err := i.rc.Runner.Run(ctx, i.commands.Install(pkg))
	if err != nil {
		return Indeterminate, err
	}
	if res.ExitCode != 0 {
		i.debug.Debug().
			Str("package", pkg).
			Int("exitCode", res.ExitCode).
			Msg("Install exited non-zero; classifying from output")
	}

	outcome, ok := Match(i.rules, res.Output)
	if !ok {
		i.log.Warn(fmt.Sprintf("Could not determine what happened with package %s", pkg))
		return Indeterminate, nil
	}
	return outcome, nil
}

// refreshIndex runs the index update; its output and status are discarded
func (i *Installer) refreshIndex(ctx context.Context) error {
	_, err := i.rc.Runner.Run(ctx, i.commands.Update())
	return err
}

// addRepository registers a PPA and refreshes the index again
func (i *Installer) addRepository(ctx context.Context, id string) error {
	if _, err := i.rc.Runner.Run(ctx, i.commands.AddRepository(id)); err != nil {
		return err
	}
	return i.refreshIndex(ctx)
}

// asList accepts the list shapes a task-file decoder produces
func asList(data interface{}) ([]interface{}, bool) {
	switch v := data.(type) {
	case nil:
		return nil, true
	case []interface{}:
		return v, true
	case []string:
		out := make([]interface{}, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

var _ types.Directive = (*Installer)(nil)

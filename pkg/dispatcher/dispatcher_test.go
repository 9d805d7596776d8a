package dispatcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotapt/pkg/aptget"
	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/taskfile"
	"github.com/arthur-debert/dotapt/pkg/testutil"
	"github.com/arthur-debert/dotapt/pkg/types"
)

type recordingDirective struct {
	name    string
	verdict bool
	err     error
	seen    []interface{}
	rc      *types.RunContext
}

func (r *recordingDirective) Name() string                { return r.name }
func (r *recordingDirective) CanHandle(name string) bool { return name == r.name }
func (r *recordingDirective) Handle(_ context.Context, _ string, data interface{}) (bool, error) {
	r.seen = append(r.seen, data)
	return r.verdict, r.err
}

func factoryFor(d *recordingDirective) types.DirectiveFactory {
	return func(rc *types.RunContext) (types.Directive, error) {
		d.rc = rc
		return d, nil
	}
}

func newRunContext() (*types.RunContext, *testutil.FakeRunner, *testutil.RecordingLogger) {
	runner := testutil.NewFakeRunner()
	logger := testutil.NewRecordingLogger()
	return types.NewRunContext(logger, runner), runner, logger
}

func task(entries ...taskfile.Entry) taskfile.Task {
	return taskfile.Task{Entries: entries}
}

func TestNewRegistersInOrder(t *testing.T) {
	rc, _, _ := newRunContext()
	a := &recordingDirective{name: "a", verdict: true}
	b := &recordingDirective{name: "b", verdict: true}

	d, err := New(rc, factoryFor(a), factoryFor(b))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, d.Directives())
	assert.Same(t, rc, a.rc)
}

func TestNewFactoryError(t *testing.T) {
	rc := types.NewRunContext(nil, nil)
	_, err := New(rc, aptget.Factory())
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = New(nil)
	assert.Error(t, err)
}

func TestRunAppliesDefaults(t *testing.T) {
	rc, _, _ := newRunContext()
	d, err := New(rc)
	require.NoError(t, err)

	summary, err := d.Run(context.Background(), "tasks.yaml", []taskfile.Task{
		task(taskfile.Entry{Directive: "defaults", Data: map[string]interface{}{
			"apt-get": map[string]interface{}{"sudo": true},
		}}),
	})
	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.Equal(t, map[string]interface{}{"sudo": true}, rc.DefaultsFor("apt-get"))
}

func TestRunDefaultsMustBeMapping(t *testing.T) {
	rc, _, logger := newRunContext()
	d, err := New(rc)
	require.NoError(t, err)

	summary, err := d.Run(context.Background(), "", []taskfile.Task{
		task(taskfile.Entry{Directive: "defaults", Data: []interface{}{"x"}}),
	})
	require.NoError(t, err)
	assert.False(t, summary.Success)
	assert.True(t, logger.Has(types.LevelError, "Defaults must be a mapping"))
}

func TestRunUnknownDirective(t *testing.T) {
	rc, _, logger := newRunContext()
	after := &recordingDirective{name: "after", verdict: true}
	d, err := New(rc, factoryFor(after))
	require.NoError(t, err)

	summary, err := d.Run(context.Background(), "", []taskfile.Task{
		task(taskfile.Entry{Directive: "link", Data: nil}),
		task(taskfile.Entry{Directive: "after", Data: "x"}),
	})
	require.NoError(t, err)
	assert.False(t, summary.Success)
	assert.True(t, logger.Has(types.LevelError, "Action link not handled"))
	assert.Equal(t, []interface{}{"x"}, after.seen, "later tasks still run")
}

func TestRunFalseVerdictContinues(t *testing.T) {
	rc, _, _ := newRunContext()
	failing := &recordingDirective{name: "failing", verdict: false}
	next := &recordingDirective{name: "next", verdict: true}
	d, err := New(rc, factoryFor(failing), factoryFor(next))
	require.NoError(t, err)

	summary, err := d.Run(context.Background(), "", []taskfile.Task{
		task(taskfile.Entry{Directive: "failing"}, taskfile.Entry{Directive: "next"}),
	})
	require.NoError(t, err)
	assert.False(t, summary.Success)
	assert.Len(t, failing.seen, 1)
	assert.Len(t, next.seen, 1)
}

func TestRunErrorAborts(t *testing.T) {
	rc, _, _ := newRunContext()
	broken := &recordingDirective{name: "broken", err: errors.New(errors.ErrCommandSpawn, "boom")}
	next := &recordingDirective{name: "next", verdict: true}
	d, err := New(rc, factoryFor(broken), factoryFor(next))
	require.NoError(t, err)

	summary, err := d.Run(context.Background(), "", []taskfile.Task{
		task(taskfile.Entry{Directive: "broken"}),
		task(taskfile.Entry{Directive: "next"}),
	})
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandSpawn))
	assert.False(t, summary.Success)
	assert.Empty(t, next.seen)
}

func TestRunCollectsAptReports(t *testing.T) {
	rc, runner, _ := newRunContext()
	runner.On("apt-get install vim -y", "vim is already the newest version (2:8.2).")
	runner.On("apt-get install ghost-pkg -y", "E: Unable to locate package ghost-pkg")

	var forwarded []types.Report
	rc.Reports = func(r types.Report) { forwarded = append(forwarded, r) }

	d, err := New(rc, aptget.Factory())
	require.NoError(t, err)

	summary, err := d.Run(context.Background(), "install.conf.yaml", []taskfile.Task{
		task(taskfile.Entry{Directive: "apt-get", Data: []interface{}{"vim"}}),
		task(taskfile.Entry{Directive: "apt-get", Data: []interface{}{"ghost-pkg"}}),
	})
	require.NoError(t, err)

	assert.Equal(t, "install.conf.yaml", summary.Source)
	assert.False(t, summary.Success)
	require.Len(t, summary.Reports, 2)
	assert.True(t, summary.Reports[0].Success)
	assert.False(t, summary.Reports[1].Success)
	assert.Len(t, forwarded, 2, "existing sink keeps receiving reports")
	assert.Equal(t, 2, runner.CountOf("apt-get update"))

	// the previous sink is restored after the run
	rc.Report(types.Report{})
	assert.Len(t, forwarded, 3)
}

func TestRunEmpty(t *testing.T) {
	rc, _, _ := newRunContext()
	rc.DryRun = true
	d, err := New(rc)
	require.NoError(t, err)

	summary, err := d.Run(context.Background(), "x", nil)
	require.NoError(t, err)
	assert.True(t, summary.Success)
	assert.True(t, summary.DryRun)
	assert.Empty(t, summary.Reports)
}

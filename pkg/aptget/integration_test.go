//go:build integration

package aptget

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcexec "github.com/testcontainers/testcontainers-go/exec"

	"github.com/arthur-debert/dotapt/pkg/testutil"
	"github.com/arthur-debert/dotapt/pkg/types"
)

// containerRunner runs commands inside a running container through sh -c
type containerRunner struct {
	container testcontainers.Container
}

func (r *containerRunner) Run(ctx context.Context, command string) (types.CommandResult, error) {
	code, reader, err := r.container.Exec(ctx, []string{"sh", "-c", command}, tcexec.Multiplexed())
	if err != nil {
		return types.CommandResult{Command: command}, err
	}
	out, err := io.ReadAll(reader)
	if err != nil {
		return types.CommandResult{Command: command}, err
	}
	return types.CommandResult{Command: command, Output: string(out), ExitCode: code}, nil
}

func startUbuntu(ctx context.Context, t *testing.T) testcontainers.Container {
	t.Helper()
	req := testcontainers.ContainerRequest{
		Image: "ubuntu:22.04",
		Cmd:   []string{"sleep", "infinity"},
		Env:   map[string]string{"DEBIAN_FRONTEND": "noninteractive"},
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })
	return container
}

func TestInstallerAgainstRealAptGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers run in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	container := startUbuntu(ctx, t)
	logger := testutil.NewRecordingLogger()
	rc := types.NewRunContext(logger, &containerRunner{container: container})

	installer, err := New(rc)
	require.NoError(t, err)

	report, err := installer.Run(ctx, []interface{}{"coreutils", "less", "dotapt-ghost-pkg"})
	require.NoError(t, err)
	require.Len(t, report.Packages, 3)

	assert.Equal(t, UpToDate.Label(), report.Packages[0].Outcome)
	assert.Equal(t, Installed.Label(), report.Packages[1].Outcome)
	assert.Equal(t, NotFound.Label(), report.Packages[2].Outcome)
	assert.False(t, report.Success)
	assert.True(t, logger.Has(types.LevelError, "Could not install package: 'dotapt-ghost-pkg'"))

	// a second run finds the package already installed
	again, err := installer.Process(ctx, []interface{}{"less"})
	require.NoError(t, err)
	assert.True(t, again)
}

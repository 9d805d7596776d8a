package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dotapt/pkg/errors"
)

// isolate points the XDG config lookup at an empty directory
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "apt-get", s.Apt.PackageManager)
	assert.Equal(t, "add-apt-repository", s.Apt.RepositoryTool)
	assert.Equal(t, "sh", s.Apt.Shell)
	assert.False(t, s.Apt.StrictFormat)
	assert.Equal(t, "auto", s.Output.Format)
	assert.Empty(t, s.Source)
}

func TestLoadUserConfig(t *testing.T) {
	t.Run("toml_in_xdg_dir", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "dotapt", "config.toml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(`
[apt]
package_manager = "apt"
strict_format = true
`), 0644))

		s, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, "apt", s.Apt.PackageManager)
		assert.True(t, s.Apt.StrictFormat)
		// untouched keys keep their defaults
		assert.Equal(t, "add-apt-repository", s.Apt.RepositoryTool)
		assert.Equal(t, path, s.Source)
	})

	t.Run("explicit_yaml_path", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "settings.yaml")
		require.NoError(t, os.WriteFile(path, []byte("apt:\n  repository_tool: /usr/bin/add-apt-repository\noutput:\n  format: json\n"), 0644))

		s, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "/usr/bin/add-apt-repository", s.Apt.RepositoryTool)
		assert.Equal(t, "json", s.Output.Format)
	})

	t.Run("explicit_path_missing", func(t *testing.T) {
		isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)
	})

	t.Run("invalid_toml", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[apt\npackage_manager ="), 0644))

		_, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
	})
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("DOTAPT_APT_PACKAGE_MANAGER", "sudo apt-get")
	t.Setenv("DOTAPT_APT_STRICT_FORMAT", "true")
	t.Setenv("DOTAPT_OUTPUT_FORMAT", "text")

	s, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sudo apt-get", s.Apt.PackageManager)
	assert.True(t, s.Apt.StrictFormat)
	assert.Equal(t, "text", s.Output.Format)
}

func TestValidate(t *testing.T) {
	isolate(t)
	t.Setenv("DOTAPT_APT_PACKAGE_MANAGER", " ")

	_, err := Load("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "apt.package_manager", envKey("DOTAPT_APT_PACKAGE_MANAGER"))
	assert.Equal(t, "output.format", envKey("DOTAPT_OUTPUT_FORMAT"))
}

func TestDefaultConfigContent(t *testing.T) {
	assert.Contains(t, DefaultConfigContent(), `package_manager = "apt-get"`)
}

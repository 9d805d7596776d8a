package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/dotapt/pkg/errors"
	"github.com/arthur-debert/dotapt/pkg/logging"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DOTAPT_"

// Apt holds the package manager command settings
type Apt struct {
	PackageManager string `koanf:"package_manager"`
	RepositoryTool string `koanf:"repository_tool"`
	Shell          string `koanf:"shell"`
	StrictFormat   bool   `koanf:"strict_format"`
}

// Output holds rendering settings
type Output struct {
	Format string `koanf:"format"`
}

// Settings is the fully resolved application configuration
type Settings struct {
	Apt    Apt    `koanf:"apt"`
	Output Output `koanf:"output"`

	// Source is the user file that was merged, empty when none was found
	Source string `koanf:"-"`
}

// Load resolves settings from defaults, the user file and the environment.
// When path is empty the XDG config directory is searched.
func Load(path string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	source := path
	if source == "" {
		source = findUserConfig()
	} else if _, err := os.Stat(source); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s", source)
	}

	if source != "" {
		if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded user config")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}
	s.Source = source

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the settings that would otherwise produce broken command lines
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Apt.PackageManager) == "" {
		return errors.New(errors.ErrConfigValid, "apt.package_manager cannot be empty")
	}
	if strings.TrimSpace(s.Apt.RepositoryTool) == "" {
		return errors.New(errors.ErrConfigValid, "apt.repository_tool cannot be empty")
	}
	if strings.TrimSpace(s.Apt.Shell) == "" {
		return errors.New(errors.ErrConfigValid, "apt.shell cannot be empty")
	}
	return nil
}

// envKey maps DOTAPT_APT_PACKAGE_MANAGER to apt.package_manager.
// Only the first underscore separates section from key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// findUserConfig returns the first existing user config file, or ""
func findUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(configHome, logging.AppDirName, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	spadeerrors "spade/cli/internal/errors"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SPADE_BUILD_DIR.
const EnvPrefix = "SPADE"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	dir string
}

// NewLoader creates a loader reading config.yaml from dir.
func NewLoader(dir string) Loader {
	return &loader{dir: dir}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (SPADE_*)
// 2. Config file (<dir>/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
	v.SetConfigType("yaml")
	if l.dir != "" {
		v.AddConfigPath(l.dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	// SPADE_BUILD_SOURCE_DIR -> build.source_dir
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range []string{"log_level", "abaqus.commands", "build.tool", "build.source_dir", "build.dir"} {
		_ = v.BindEnv(key)
	}

	setDefaults(v)

	if l.dir != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, spadeerrors.Wrap(spadeerrors.ConfigInvalid, "failed to read config file", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, spadeerrors.Wrap(spadeerrors.ConfigInvalid, "failed to unmarshal config", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := Validate(cfg); err != nil {
		return nil, spadeerrors.Wrap(spadeerrors.ConfigInvalid, "invalid configuration", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("abaqus.commands", defaults.Abaqus.Commands)
	v.SetDefault("build.tool", defaults.Build.Tool)
	v.SetDefault("build.source_dir", defaults.Build.SourceDir)
	v.SetDefault("build.dir", defaults.Build.Dir)
}

// LoadConfig loads configuration from the XDG config directory.
func LoadConfig() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, spadeerrors.Wrap(spadeerrors.ConfigInvalid, "failed to resolve config directory", fmt.Errorf("xdg: %w", err))
	}
	return NewLoader(dir).Load()
}

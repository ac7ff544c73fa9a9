// Package config loads spade settings from config.yaml in the XDG config dir, with
// SPADE_* environment overrides on top.
package config

import (
	"os"
	"path/filepath"

	"spade/cli/internal/abaqus"
	"spade/cli/internal/builder"
	"spade/cli/internal/xdg"
)

// FileName is the config file looked up in the config directory.
const FileName = "config.yaml"

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string       `yaml:"log_level" mapstructure:"log_level"`
	Abaqus   AbaqusConfig `yaml:"abaqus" mapstructure:"abaqus"`
	Build    BuildConfig  `yaml:"build" mapstructure:"build"`

	// File is the config file that was read, empty when none exists.
	File string `yaml:"-" mapstructure:"-"`
}

// AbaqusConfig holds vendor tool discovery settings.
type AbaqusConfig struct {
	// Commands are tried in order; the first found on PATH wins.
	Commands []string `yaml:"commands" mapstructure:"commands"`
}

// BuildConfig holds extractor build settings.
type BuildConfig struct {
	Tool string `yaml:"tool" mapstructure:"tool"`
	// SourceDir is the project directory the build tool runs in.
	SourceDir string `yaml:"source_dir" mapstructure:"source_dir"`
	// Dir is a persistent build directory. Empty builds in a temporary directory.
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Abaqus: AbaqusConfig{
			Commands: append([]string(nil), abaqus.DefaultCommands...),
		},
		Build: BuildConfig{
			Tool:      builder.DefaultTool,
			SourceDir: executableDir(),
		},
	}
}

// Dir returns the directory config.yaml is read from.
func Dir() (string, error) {
	return xdg.ConfigDir()
}

// executableDir returns the directory holding the running spade binary, which ships
// next to the extractor sources.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

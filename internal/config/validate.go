package config

import (
	"errors"
	"fmt"
	"strings"

	"spade/cli/internal/logging"
)

var (
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrNoCommands indicates an empty Abaqus candidate list.
	ErrNoCommands = errors.New("no abaqus commands configured")
	// ErrEmptyBuildTool indicates a missing build tool.
	ErrEmptyBuildTool = errors.New("empty build tool")
)

// Validate checks that the configuration is usable.
func Validate(cfg *Config) error {
	var errs []error

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidLogLevel, err))
	}

	commands := cfg.Abaqus.Commands[:0:0]
	for _, c := range cfg.Abaqus.Commands {
		if c = strings.TrimSpace(c); c != "" {
			commands = append(commands, c)
		}
	}
	cfg.Abaqus.Commands = commands
	if len(commands) == 0 {
		errs = append(errs, ErrNoCommands)
	}

	if strings.TrimSpace(cfg.Build.Tool) == "" {
		errs = append(errs, ErrEmptyBuildTool)
	}

	return errors.Join(errs...)
}

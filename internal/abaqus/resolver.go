// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package abaqus

import (
	"context"
	"fmt"

	spadeerrors "spade/cli/internal/errors"
	"spade/cli/internal/logging"
	"spade/cli/internal/process"
)

// CommandResolver queries the Abaqus executable through an Executor.
type CommandResolver struct {
	exec process.Executor
	log  *logging.Logger
	env  []string
}

// NewCommandResolver creates a resolver. env is the environment the vendor queries run
// with; nil inherits the current process environment.
func NewCommandResolver(exec process.Executor, log *logging.Logger, env []string) *CommandResolver {
	return &CommandResolver{exec: exec, log: log, env: env}
}

// Resolve finds the first candidate on the search path and scrapes its version and
// installation layout.
func (r *CommandResolver) Resolve(ctx context.Context, candidates []string) (*Tool, error) {
	if len(candidates) == 0 {
		candidates = DefaultCommands
	}
	command, path, err := FindCommand(r.exec.LookPath, candidates)
	if err != nil {
		return nil, err
	}
	r.log.Info("Found Abaqus command", "command", command, "path", path)

	versionOut, err := r.query(ctx, command, "information=version")
	if err != nil {
		return nil, err
	}
	version, err := ParseOfficialVersion(versionOut)
	if err != nil {
		return nil, err
	}
	r.log.Info("Found Abaqus version", "version", version)

	envOut, err := r.query(ctx, command, "information=environment")
	if err != nil {
		return nil, err
	}
	installation, bin, include, err := CodePaths(ParseInstallationPaths(envOut), CodeDirectory)
	if err != nil {
		return nil, err
	}

	tool := &Tool{
		Command:      command,
		Path:         path,
		Version:      version,
		Installation: installation,
		BinDir:       bin,
		IncludeDir:   include,
	}
	r.log.Info("Found Abaqus bin", "bin", tool.BinDir)
	r.log.Debug("Abaqus installation", "installation", tool.Installation, "include", tool.IncludeDir)
	return tool, nil
}

func (r *CommandResolver) query(ctx context.Context, command, information string) (string, error) {
	res, err := r.exec.Run(ctx, process.RunOptions{
		Name: command,
		Args: []string{information},
		Env:  r.env,
	})
	if err != nil {
		if process.IsNotFound(err) {
			return "", spadeerrors.Wrap(spadeerrors.VersionQueryFailed,
				fmt.Sprintf("Abaqus command not found at: '%s'", command), err)
		}
		e := spadeerrors.Wrap(spadeerrors.VersionQueryFailed,
			fmt.Sprintf("Abaqus command failed. Command used: '%s'", command), err)
		if res != nil && len(res.Stderr) > 0 {
			e = e.WithDetail(string(res.Stderr))
		}
		return "", e
	}
	return string(res.Stdout), nil
}

var _ Resolver = (*CommandResolver)(nil)

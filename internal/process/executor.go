// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package process provides an abstraction over running external commands: the Abaqus
// information queries, the build tool and the native extractor all go through an
// Executor so they can be replaced in tests.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os/exec"
)

// RunOptions configures command execution.
type RunOptions struct {
	Name   string    // Command name or path (required)
	Args   []string  // Command arguments
	Dir    string    // Working directory (empty = current)
	Env    []string  // Full child environment (nil = inherit)
	Stdout io.Writer // If set, streams stdout here instead of capturing
	Stderr io.Writer // If set, streams stderr here instead of capturing
}

// Result holds the output from a completed command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Executor runs external commands.
type Executor interface {
	// Run executes a command and blocks until it exits.
	// If Stdout/Stderr writers are set in opts, output streams there and
	// Result.Stdout/Stderr will be nil.
	// Returns *exec.ExitError on non-zero exit; Result.ExitCode carries the status.
	Run(ctx context.Context, opts RunOptions) (*Result, error)

	// LookPath searches for an executable in PATH.
	LookPath(name string) (string, error)
}

// OSExecutor runs commands on the host with os/exec.
type OSExecutor struct{}

// NewOSExecutor returns the host executor.
func NewOSExecutor() *OSExecutor { return &OSExecutor{} }

// Run implements Executor.
func (OSExecutor) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.Name == "" {
		return nil, errors.New("process: command name is required")
	}

	cmd := exec.CommandContext(ctx, opts.Name, opts.Args...)
	cmd.Dir = opts.Dir
	cmd.Env = opts.Env

	var stdout, stderr bytes.Buffer
	if opts.Stdout != nil {
		cmd.Stdout = opts.Stdout
	} else {
		cmd.Stdout = &stdout
	}
	if opts.Stderr != nil {
		cmd.Stderr = opts.Stderr
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()

	result := &Result{ExitCode: -1}
	if opts.Stdout == nil {
		result.Stdout = stdout.Bytes()
	}
	if opts.Stderr == nil {
		result.Stderr = stderr.Bytes()
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}
	return result, err
}

// LookPath implements Executor.
func (OSExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// IsNotFound reports whether err means the executable could not be located or started
// because it does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

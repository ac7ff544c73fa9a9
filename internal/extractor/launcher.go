// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package extractor launches the compiled native extractor against an ODB file.
package extractor

import (
	"bytes"
	"context"
	"io"
	"os"
	"runtime"

	"spade/cli/internal/abaqus"
	spadeerrors "spade/cli/internal/errors"
	"spade/cli/internal/logging"
	"spade/cli/internal/process"
	"spade/cli/internal/request"
)

// Launcher runs the extractor executable.
type Launcher struct {
	exec   process.Executor
	log    *logging.Logger
	stdout io.Writer
	stderr io.Writer
	goos   string
}

// New creates a Launcher. stdout and stderr receive the extractor output when the
// request is verbose and default to the process streams.
func New(exec process.Executor, log *logging.Logger, stdout, stderr io.Writer) *Launcher {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Launcher{exec: exec, log: log, stdout: stdout, stderr: stderr, goos: runtime.GOOS}
}

// Run executes the extractor synchronously with the Abaqus bin directory on the library
// search path. The request must already be normalized.
func (l *Launcher) Run(ctx context.Context, executable string, tool *abaqus.Tool, req *request.Request, env []string) error {
	run := process.RunOptions{
		Name: executable,
		Args: req.Arguments(),
		Env:  process.WithLibraryPath(env, tool.BinDir, l.goos),
	}

	var diagnostic bytes.Buffer
	passthrough := req.Verbose || req.Debug
	if passthrough {
		run.Stdout = io.MultiWriter(l.stdout, &diagnostic)
		run.Stderr = io.MultiWriter(l.stderr, &diagnostic)
	}

	l.log.Info("Running extract for file", "odb", req.ODBFile)
	l.log.Debug("Running spade with command", "command", req.CommandLine(executable))

	res, err := l.exec.Run(ctx, run)
	if err != nil {
		if !passthrough && res != nil {
			diagnostic.Write(res.Stdout)
			diagnostic.Write(res.Stderr)
		}
		return spadeerrors.Wrap(spadeerrors.ExtractionFailed,
			"spade extract failed in Abaqus ODB application", err).WithDetail(diagnostic.String())
	}
	l.log.Info("Extraction finished", "extracted_file", req.ExtractedFile, "log_file", req.LogFile)
	return nil
}

// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package builder triggers the external build tool that compiles the native extractor
// against the resolved Abaqus installation, and manages the directory it builds into.
package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	spadeerrors "spade/cli/internal/errors"
	"spade/cli/internal/logging"
	"spade/cli/internal/process"
)

// DefaultTool is the build tool used when none is configured.
const DefaultTool = "scons"

// ExecutableName returns the file name of the compiled extractor for goos.
func ExecutableName(goos string) string {
	if goos == "windows" {
		return "spade.exe"
	}
	return "spade"
}

// Options controls a single build.
type Options struct {
	Tool          string
	SourceDir     string
	BuildDir      string
	AbaqusCommand string
	Recompile     bool
	// Debug streams the build tool output to the terminal.
	Debug bool
}

// Args returns the build tool arguments.
func (o Options) Args() []string {
	args := []string{
		"--build-dir=" + o.BuildDir,
		"--abaqus-command=" + o.AbaqusCommand,
	}
	if o.Recompile {
		args = append(args, "--recompile")
	}
	return args
}

// Builder runs the build tool through an Executor.
type Builder struct {
	exec   process.Executor
	log    *logging.Logger
	stdout io.Writer
	stderr io.Writer
	goos   string
}

// New creates a Builder. stdout and stderr receive the build output in debug mode and
// default to the process streams.
func New(exec process.Executor, log *logging.Logger, stdout, stderr io.Writer) *Builder {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Builder{exec: exec, log: log, stdout: stdout, stderr: stderr, goos: runtime.GOOS}
}

// Build returns the path of the extractor in opts.BuildDir, compiling it first unless it
// already exists and opts.Recompile is false.
func (b *Builder) Build(ctx context.Context, env []string, opts Options) (string, error) {
	if opts.Tool == "" {
		opts.Tool = DefaultTool
	}
	executable := filepath.Join(opts.BuildDir, ExecutableName(b.goos))

	if !opts.Recompile && exists(executable) {
		b.log.Info("Reusing compiled extractor", "path", executable)
		return executable, nil
	}

	run := process.RunOptions{
		Name: opts.Tool,
		Args: opts.Args(),
		Dir:  opts.SourceDir,
		Env:  env,
	}
	var diagnostic bytes.Buffer
	if opts.Debug {
		run.Stdout = io.MultiWriter(b.stdout, &diagnostic)
		run.Stderr = io.MultiWriter(b.stderr, &diagnostic)
	}
	b.log.Debug("Compiling spade", "command", opts.Tool, "args", run.Args, "dir", opts.SourceDir)

	res, err := b.exec.Run(ctx, run)
	if err != nil {
		e := spadeerrors.Wrap(spadeerrors.BuildFailed,
			fmt.Sprintf("Could not compile with Abaqus command '%s'", opts.AbaqusCommand), err)
		if process.IsNotFound(err) {
			e.Message += fmt.Sprintf(": build tool '%s' not found", opts.Tool)
		}
		if !opts.Debug && res != nil {
			diagnostic.Write(res.Stdout)
			diagnostic.Write(res.Stderr)
		}
		return "", e.WithDetail(diagnostic.String())
	}

	if !exists(executable) {
		return "", spadeerrors.New(spadeerrors.BuildFailed,
			fmt.Sprintf("Could not compile with Abaqus command '%s': %s was not produced", opts.AbaqusCommand, executable))
	}
	return executable, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

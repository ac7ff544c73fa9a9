// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package pipeline runs an extraction end to end: validate the request, resolve Abaqus,
// build the extractor, run it, and clean up the build directory. Steps run strictly one
// after another and at most one child process is alive at a time.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"spade/cli/internal/abaqus"
	"spade/cli/internal/builder"
	"spade/cli/internal/extractor"
	"spade/cli/internal/logging"
	"spade/cli/internal/process"
	"spade/cli/internal/request"
)

// CleanupWarning is logged when a temporary build directory could not be removed.
const CleanupWarning = "Failed to clean up temporary directory. You can safely remove this directory."

// Settings are the configured parts of an extraction that do not come from the request.
type Settings struct {
	// AbaqusCommands are the candidate vendor executables in priority order.
	AbaqusCommands []string
	BuildTool      string
	// SourceDir is where the build tool runs.
	SourceDir string
	// BuildDir is a persistent build directory. Empty means a temporary one.
	BuildDir string
	// WorkDir is the parent of temporary build directories. Empty means the current directory.
	WorkDir string
}

// Progress is called around the build step. The returned function is called when the
// step ends.
type Progress func(label string) (stop func())

// Service wires the resolver, builder and launcher over a single Executor.
type Service struct {
	exec     process.Executor
	log      *logging.Logger
	builder  *builder.Builder
	launcher *extractor.Launcher
	progress Progress
	environ  func() []string
	resolver func(env []string) abaqus.Resolver
	open     func(dir, parent string) (*builder.Workspace, error)
}

// New creates a Service. Child output that is passed through goes to stdout and stderr.
func New(exec process.Executor, log *logging.Logger, stdout, stderr io.Writer) *Service {
	return &Service{
		exec:     exec,
		log:      log,
		builder:  builder.New(exec, log, stdout, stderr),
		launcher: extractor.New(exec, log, stdout, stderr),
		environ:  process.Environ,
		resolver: func(env []string) abaqus.Resolver {
			return abaqus.NewCommandResolver(exec, log, env)
		},
		open: builder.OpenWorkspace,
	}
}

// WithProgress sets the hook called around the build step.
func (s *Service) WithProgress(p Progress) *Service {
	s.progress = p
	return s
}

// Extract runs the full pipeline for req. req is normalized in place.
func (s *Service) Extract(ctx context.Context, req *request.Request, settings Settings) (err error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	env := s.environ()

	tool, err := s.resolver(env).Resolve(ctx, settings.AbaqusCommands)
	if err != nil {
		return err
	}

	ws, err := s.open(settings.BuildDir, settings.WorkDir)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := ws.Close()
		switch {
		case closeErr == nil:
		case builder.IsNotEmpty(closeErr):
			s.log.Warn(CleanupWarning, "dir", ws.Dir, "error", closeErr)
		case err == nil:
			err = closeErr
		}
	}()

	s.log.Info(fmt.Sprintf("Compiling and linking against Abaqus %s", tool.Version))
	stop := func() {}
	if s.progress != nil {
		stop = s.progress(fmt.Sprintf("Compiling spade against Abaqus %s", tool.Version))
	}
	executable, err := s.builder.Build(ctx, env, builder.Options{
		Tool:          settings.BuildTool,
		SourceDir:     settings.SourceDir,
		BuildDir:      ws.Dir,
		AbaqusCommand: tool.Path,
		Recompile:     req.Recompile,
		Debug:         req.Debug,
	})
	stop()
	if err != nil {
		return err
	}

	return s.launcher.Run(ctx, executable, tool, req, env)
}

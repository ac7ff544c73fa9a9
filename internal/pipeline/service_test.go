// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package pipeline

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"spade/cli/internal/builder"
	spadeerrors "spade/cli/internal/errors"
	"spade/cli/internal/logging"
	"spade/cli/internal/process"
	"spade/cli/internal/process/processtest"
	"spade/cli/internal/request"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	versionOutput     = "Official Version: Abaqus 2024\n"
	environmentOutput = "Abaqus is located in the directory /opt/SIMULIA/2024 /opt/SIMULIA/2024/linux_a64/code\n"
)

type scenario struct {
	buildExit   int
	extractExit int
}

func (sc scenario) handler(opts process.RunOptions) processtest.Response {
	switch {
	case opts.Name == "abaqus" && opts.Args[0] == "information=version":
		return processtest.Response{Stdout: versionOutput}
	case opts.Name == "abaqus" && opts.Args[0] == "information=environment":
		return processtest.Response{Stdout: environmentOutput}
	case opts.Name == builder.DefaultTool:
		if sc.buildExit != 0 {
			return processtest.Response{ExitCode: sc.buildExit, Stderr: "compile error"}
		}
		return processtest.Response{Do: func(opts process.RunOptions) error {
			dir := strings.TrimPrefix(opts.Args[0], "--build-dir=")
			return os.WriteFile(filepath.Join(dir, builder.ExecutableName(goosForTest())), []byte("bin"), 0o755)
		}}
	}
	return processtest.Response{ExitCode: sc.extractExit}
}

func goosForTest() string {
	if filepath.Separator == '\\' {
		return "windows"
	}
	return "linux"
}

func newTestService(fake *processtest.Executor, log *logging.Logger) *Service {
	s := New(fake, log, io.Discard, io.Discard)
	s.environ = func() []string { return []string{"HOME=/home/u"} }
	return s
}

func names(calls []process.RunOptions) []string {
	out := make([]string, 0, len(calls))
	for _, c := range calls {
		out = append(out, filepath.Base(c.Name))
	}
	return out
}

func TestExtractRunsStepsInOrder(t *testing.T) {
	fake := &processtest.Executor{
		Paths:   map[string]string{"abaqus": "/usr/bin/abaqus"},
		Handler: scenario{}.handler,
	}
	var labels []string
	svc := newTestService(fake, logging.Discard()).WithProgress(func(label string) func() {
		labels = append(labels, label)
		return func() { labels = append(labels, "done") }
	})

	req := &request.Request{ODBFile: "sample.odb", Field: request.Selector{"S"}, ForceOverwrite: true}
	workDir := t.TempDir()
	err := svc.Extract(context.Background(), req, Settings{SourceDir: "/src/spade", WorkDir: workDir})
	require.NoError(t, err)

	calls := fake.Calls()
	assert.Equal(t, []string{"abaqus", "abaqus", "scons", builder.ExecutableName(goosForTest())}, names(calls))
	assert.Equal(t, "/src/spade", calls[2].Dir)
	assert.Contains(t, calls[2].Args, "--abaqus-command=/usr/bin/abaqus", "build uses the resolved path")
	assert.Equal(t, req.Arguments(), calls[3].Args)
	assert.Equal(t, []string{"Compiling spade against Abaqus 2024", "done"}, labels)

	entries, err := os.ReadDir(workDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary build directory removed")
}

func TestExtractInvalidRequestLaunchesNothing(t *testing.T) {
	fake := &processtest.Executor{Paths: map[string]string{"abaqus": "/usr/bin/abaqus"}, Handler: scenario{}.handler}

	err := newTestService(fake, nil).Extract(context.Background(), &request.Request{}, Settings{WorkDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, spadeerrors.InvalidRequest, spadeerrors.KindOf(err))
	assert.Contains(t, err.Error(), "Abaqus output database (ODB) file not specified.")
	assert.Empty(t, fake.Calls())
	assert.Empty(t, fake.Lookups())
}

func TestExtractResolutionFailureStopsBeforeBuild(t *testing.T) {
	fake := &processtest.Executor{Handler: scenario{}.handler}
	workDir := t.TempDir()

	err := newTestService(fake, nil).Extract(context.Background(),
		&request.Request{ODBFile: "sample.odb"}, Settings{AbaqusCommands: []string{"a", "b"}, WorkDir: workDir})
	require.Error(t, err)
	assert.Equal(t, spadeerrors.ResolutionFailed, spadeerrors.KindOf(err))
	assert.Contains(t, err.Error(), "Could not find any executable on PATH in: a b")
	assert.Empty(t, fake.Calls())

	entries, _ := os.ReadDir(workDir)
	assert.Empty(t, entries, "no build directory created")
}

func TestExtractBuildFailureSkipsExtraction(t *testing.T) {
	fake := &processtest.Executor{
		Paths:   map[string]string{"abaqus": "/usr/bin/abaqus"},
		Handler: scenario{buildExit: 2}.handler,
	}

	err := newTestService(fake, nil).Extract(context.Background(),
		&request.Request{ODBFile: "sample.odb"}, Settings{WorkDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, spadeerrors.BuildFailed, spadeerrors.KindOf(err))
	assert.Equal(t, 1, spadeerrors.ExitCode(err))
	assert.Equal(t, []string{"abaqus", "abaqus", "scons"}, names(fake.Calls()))
}

func TestExtractSurfacesExtractorExitCode(t *testing.T) {
	fake := &processtest.Executor{
		Paths:   map[string]string{"abaqus": "/usr/bin/abaqus"},
		Handler: scenario{extractExit: 5}.handler,
	}

	err := newTestService(fake, nil).Extract(context.Background(),
		&request.Request{ODBFile: "sample.odb"}, Settings{WorkDir: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, spadeerrors.ExtractionFailed, spadeerrors.KindOf(err))
	assert.Equal(t, 5, spadeerrors.ExitCode(err))
}

func TestExtractPersistentBuildDirReused(t *testing.T) {
	buildDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, builder.ExecutableName(goosForTest())), []byte("bin"), 0o755))
	fake := &processtest.Executor{
		Paths:   map[string]string{"abaqus": "/usr/bin/abaqus"},
		Handler: scenario{}.handler,
	}

	err := newTestService(fake, nil).Extract(context.Background(),
		&request.Request{ODBFile: "sample.odb"}, Settings{BuildDir: buildDir})
	require.NoError(t, err)
	assert.NotContains(t, names(fake.Calls()), "scons")

	_, err = os.Stat(buildDir)
	assert.NoError(t, err, "persistent build directory kept")
}

func TestExtractCleanupNotEmptyIsWarning(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	fake := &processtest.Executor{
		Paths:   map[string]string{"abaqus": "/usr/bin/abaqus"},
		Handler: scenario{}.handler,
	}
	var out bytes.Buffer
	svc := newTestService(fake, logging.New(&out, pterm.LogLevelWarn))
	dir := t.TempDir()
	svc.open = func(string, string) (*builder.Workspace, error) {
		return builder.NewTemporaryWorkspace(dir, func(string) error {
			return &os.PathError{Op: "unlinkat", Path: dir, Err: syscall.ENOTEMPTY}
		}), nil
	}

	err := svc.Extract(context.Background(), &request.Request{ODBFile: "sample.odb"}, Settings{})
	require.NoError(t, err)
	assert.Contains(t, out.String(), CleanupWarning)
}

func TestExtractCleanupOtherErrorIsFatal(t *testing.T) {
	fake := &processtest.Executor{
		Paths:   map[string]string{"abaqus": "/usr/bin/abaqus"},
		Handler: scenario{}.handler,
	}
	svc := newTestService(fake, nil)
	dir := t.TempDir()
	svc.open = func(string, string) (*builder.Workspace, error) {
		return builder.NewTemporaryWorkspace(dir, func(string) error {
			return &os.PathError{Op: "unlinkat", Path: dir, Err: syscall.EACCES}
		}), nil
	}

	err := svc.Extract(context.Background(), &request.Request{ODBFile: "sample.odb"}, Settings{})
	require.Error(t, err)
	assert.Equal(t, spadeerrors.CleanupFailed, spadeerrors.KindOf(err))
}

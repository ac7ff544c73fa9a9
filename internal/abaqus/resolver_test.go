// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package abaqus

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	spadeerrors "spade/cli/internal/errors"
	"spade/cli/internal/logging"
	"spade/cli/internal/process"
	"spade/cli/internal/process/processtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const environmentOutput = "Abaqus is located in the directory /opt/SIMULIA/2024 /opt/SIMULIA/2024/linux_a64/code\n"

func vendorHandler(version, environment string) func(process.RunOptions) processtest.Response {
	return func(opts process.RunOptions) processtest.Response {
		switch opts.Args[0] {
		case "information=version":
			return processtest.Response{Stdout: version}
		case "information=environment":
			return processtest.Response{Stdout: environment}
		}
		return processtest.Response{ExitCode: 1}
	}
}

func TestCommandResolverResolve(t *testing.T) {
	fake := &processtest.Executor{
		Paths:   map[string]string{"abq2025": "/usr/local/bin/abq2025"},
		Handler: vendorHandler("Official Version: Abaqus 2025\n", environmentOutput),
	}
	r := NewCommandResolver(fake, logging.Discard(), []string{"HOME=/home/u"})

	tool, err := r.Resolve(context.Background(), []string{"abaqus", "abq2025"})
	require.NoError(t, err)

	code := filepath.Join("/opt/SIMULIA/2024/linux_a64/code")
	assert.Equal(t, &Tool{
		Command:      "abq2025",
		Path:         "/usr/local/bin/abq2025",
		Version:      "2025",
		Installation: "/opt/SIMULIA/2024",
		BinDir:       filepath.Join(code, "bin"),
		IncludeDir:   filepath.Join(code, "include"),
	}, tool)

	assert.Equal(t, []string{"abaqus", "abq2025"}, fake.Lookups())
	calls := fake.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "abq2025", calls[0].Name)
	assert.Equal(t, []string{"information=version"}, calls[0].Args)
	assert.Equal(t, []string{"information=environment"}, calls[1].Args)
	assert.Equal(t, []string{"HOME=/home/u"}, calls[0].Env)
}

func TestCommandResolverDefaults(t *testing.T) {
	fake := &processtest.Executor{
		Paths:   map[string]string{"abaqus": "/usr/bin/abaqus"},
		Handler: vendorHandler("Official Version: Abaqus 2024", environmentOutput),
	}
	tool, err := NewCommandResolver(fake, nil, nil).Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "abaqus", tool.Command)
}

func TestCommandResolverErrors(t *testing.T) {
	tests := []struct {
		name      string
		paths     map[string]string
		handler   func(process.RunOptions) processtest.Response
		wantKind  spadeerrors.Kind
		wantMsg   string
		wantCalls int
	}{
		{
			name:     "nothing on path",
			wantKind: spadeerrors.ResolutionFailed,
			wantMsg:  "Could not find any executable on PATH in: abaqus abq2025",
		},
		{
			name:  "executable vanished",
			paths: map[string]string{"abaqus": "/usr/bin/abaqus"},
			handler: func(process.RunOptions) processtest.Response {
				return processtest.Response{Err: &exec.Error{Name: "abaqus", Err: exec.ErrNotFound}}
			},
			wantKind:  spadeerrors.VersionQueryFailed,
			wantMsg:   "Abaqus command not found at: 'abaqus'",
			wantCalls: 1,
		},
		{
			name:  "non-zero exit",
			paths: map[string]string{"abaqus": "/usr/bin/abaqus"},
			handler: func(process.RunOptions) processtest.Response {
				return processtest.Response{ExitCode: 2, Stderr: "license unavailable"}
			},
			wantKind:  spadeerrors.VersionQueryFailed,
			wantMsg:   "Abaqus command failed. Command used: 'abaqus'",
			wantCalls: 1,
		},
		{
			name:      "version not in output",
			paths:     map[string]string{"abaqus": "/usr/bin/abaqus"},
			handler:   vendorHandler("garbage", environmentOutput),
			wantKind:  spadeerrors.VersionQueryFailed,
			wantMsg:   "Could not find Abaqus official version",
			wantCalls: 1,
		},
		{
			name:      "no code directory",
			paths:     map[string]string{"abaqus": "/usr/bin/abaqus"},
			handler:   vendorHandler("Official Version: Abaqus 2024", "Abaqus is located in the directory /opt/SIMULIA/2024\n"),
			wantKind:  spadeerrors.VersionQueryFailed,
			wantMsg:   "Could not find Abaqus 'code' directory",
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &processtest.Executor{Paths: tt.paths, Handler: tt.handler}
			tool, err := NewCommandResolver(fake, logging.Discard(), nil).
				Resolve(context.Background(), []string{"abaqus", "abq2025"})

			require.Error(t, err)
			assert.Nil(t, tool)
			assert.Equal(t, tt.wantKind, spadeerrors.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Len(t, fake.Calls(), tt.wantCalls)
		})
	}
}

func TestCommandResolverKeepsStderrAsDetail(t *testing.T) {
	fake := &processtest.Executor{
		Paths: map[string]string{"abaqus": "/usr/bin/abaqus"},
		Handler: func(process.RunOptions) processtest.Response {
			return processtest.Response{ExitCode: 1, Stderr: "license unavailable\n"}
		},
	}
	_, err := NewCommandResolver(fake, nil, nil).Resolve(context.Background(), []string{"abaqus"})
	assert.Equal(t, "license unavailable\n", spadeerrors.DetailOf(err))
	assert.Equal(t, 1, spadeerrors.ExitCode(err))
}

// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package processtest provides an in-memory process.Executor for tests.
package processtest

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"spade/cli/internal/process"
)

// Response describes what a faked command does.
type Response struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Err is returned as-is when set, e.g. exec.ErrNotFound.
	Err error
	// Do runs before the response is produced, e.g. to create build outputs.
	Do func(opts process.RunOptions) error
}

// ExitError is returned for non-zero exit codes.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }
func (e *ExitError) ExitCode() int { return e.Code }

// Executor records every call and answers from Handler.
type Executor struct {
	// Paths maps names accepted by LookPath to the resolved path.
	Paths map[string]string
	// Handler produces the response for each Run call. A nil handler succeeds silently.
	Handler func(opts process.RunOptions) Response

	mu      sync.Mutex
	calls   []process.RunOptions
	lookups []string
}

// Run implements process.Executor.
func (e *Executor) Run(ctx context.Context, opts process.RunOptions) (*process.Result, error) {
	e.mu.Lock()
	e.calls = append(e.calls, opts)
	e.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var resp Response
	if e.Handler != nil {
		resp = e.Handler(opts)
	}
	if resp.Do != nil {
		if err := resp.Do(opts); err != nil {
			return nil, err
		}
	}
	if resp.Err != nil {
		return nil, resp.Err
	}

	result := &process.Result{ExitCode: resp.ExitCode}
	if opts.Stdout != nil {
		_, _ = io.WriteString(opts.Stdout, resp.Stdout)
	} else {
		result.Stdout = []byte(resp.Stdout)
	}
	if opts.Stderr != nil {
		_, _ = io.WriteString(opts.Stderr, resp.Stderr)
	} else {
		result.Stderr = []byte(resp.Stderr)
	}
	if resp.ExitCode != 0 {
		return result, &ExitError{Code: resp.ExitCode}
	}
	return result, nil
}

// LookPath implements process.Executor.
func (e *Executor) LookPath(name string) (string, error) {
	e.mu.Lock()
	e.lookups = append(e.lookups, name)
	e.mu.Unlock()

	if p, ok := e.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Calls returns a copy of the recorded Run calls.
func (e *Executor) Calls() []process.RunOptions {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]process.RunOptions, len(e.calls))
	copy(out, e.calls)
	return out
}

// Lookups returns the names passed to LookPath in order.
func (e *Executor) Lookups() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.lookups))
	copy(out, e.lookups)
	return out
}

var _ process.Executor = (*Executor)(nil)

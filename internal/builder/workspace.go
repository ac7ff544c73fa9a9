// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package builder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	spadeerrors "spade/cli/internal/errors"
)

// TempPrefix prefixes temporary build directories.
const TempPrefix = "spade."

// Workspace is the directory the build tool writes into. A persistent workspace is kept
// between runs so the extractor is compiled once; a temporary one is removed on Close.
type Workspace struct {
	Dir       string
	temporary bool
	removeAll func(string) error
}

// OpenWorkspace returns a persistent workspace at dir, creating it if needed. With an
// empty dir it creates a temporary spade.* directory under parent instead.
func OpenWorkspace(dir, parent string) (*Workspace, error) {
	if dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, spadeerrors.Wrap(spadeerrors.BuildFailed, "invalid build directory", err)
		}
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return nil, spadeerrors.Wrap(spadeerrors.BuildFailed,
				fmt.Sprintf("could not create build directory %s", abs), err)
		}
		return &Workspace{Dir: abs, removeAll: os.RemoveAll}, nil
	}

	if parent == "" {
		parent = "."
	}
	tmp, err := os.MkdirTemp(parent, TempPrefix)
	if err != nil {
		return nil, spadeerrors.Wrap(spadeerrors.BuildFailed, "could not create temporary build directory", err)
	}
	abs, err := filepath.Abs(tmp)
	if err != nil {
		_ = os.RemoveAll(tmp)
		return nil, spadeerrors.Wrap(spadeerrors.BuildFailed, "invalid build directory", err)
	}
	return &Workspace{Dir: abs, temporary: true, removeAll: os.RemoveAll}, nil
}

// NewTemporaryWorkspace adopts an existing directory as a temporary workspace that remove
// deletes on Close.
func NewTemporaryWorkspace(dir string, remove func(string) error) *Workspace {
	return &Workspace{Dir: dir, temporary: true, removeAll: remove}
}

// Temporary reports whether Close removes the directory.
func (w *Workspace) Temporary() bool { return w.temporary }

// Close removes a temporary workspace. Persistent workspaces are left alone.
func (w *Workspace) Close() error {
	if w == nil || !w.temporary {
		return nil
	}
	if err := w.removeAll(w.Dir); err != nil {
		return spadeerrors.Wrap(spadeerrors.CleanupFailed,
			fmt.Sprintf("could not remove %s", w.Dir), err)
	}
	return nil
}

// IsNotEmpty reports whether err is the "directory not empty" failure that leaves a stray
// build directory behind without affecting the extraction result.
func IsNotEmpty(err error) bool {
	return errors.Is(err, syscall.ENOTEMPTY) || isDirNotEmpty(err)
}

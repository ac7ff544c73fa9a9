// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build windows

package builder

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isDirNotEmpty matches ERROR_DIR_NOT_EMPTY, which os.RemoveAll reports on Windows in
// place of ENOTEMPTY.
func isDirNotEmpty(err error) bool {
	return errors.Is(err, windows.ERROR_DIR_NOT_EMPTY)
}

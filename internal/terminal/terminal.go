// Package terminal provides utilities for terminal detection and inline status output.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 80

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind f, or DefaultWidth.
func Width(f *os.File) int {
	if f == nil {
		return DefaultWidth
	}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
		return width
	}
	return DefaultWidth
}

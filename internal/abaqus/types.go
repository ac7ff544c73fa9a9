// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package abaqus locates the Abaqus vendor executable and scrapes what spade needs from it:
// the official version and the installation layout used to compile and run the extractor.
package abaqus

import "context"

// DefaultCommands are tried in order when no candidates are configured.
var DefaultCommands = []string{"abaqus", "abq2025"}

// CodeDirectory is the installation directory holding bin/ and include/.
const CodeDirectory = "code"

// Tool describes a resolved Abaqus installation.
type Tool struct {
	// Command is the candidate as given by the user.
	Command string
	// Path is the absolute path LookPath resolved Command to.
	Path         string
	Version      string
	Installation string
	BinDir       string
	IncludeDir   string
}

// Resolver turns a list of candidate commands into a resolved Tool.
type Resolver interface {
	Resolve(ctx context.Context, candidates []string) (*Tool, error)
}

// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

var (
	// Version holds the spade version printed by --version.
	// This value is typically set at build time using -ldflags "-X spade/cli/cmd.Version=...".
	Version = "0.0.0-dev"
)

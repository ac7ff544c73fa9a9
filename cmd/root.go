// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for spade, the Serialized Proprietary
// Abaqus Data Extractor. It implements the extract, docs and config subcommands using
// the Cobra CLI framework.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	spadeerrors "spade/cli/internal/errors"
	"spade/cli/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "spade",
	Short: "Serialized Proprietary Abaqus Data Extractor",
	Long: `Tool for extracting data from an Abaqus output database (odb) file into a
hierarchical data format (hdf5) file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "spade %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application and exits with the status of the failure, if any.
func Execute() {
	// A .env in the working directory may carry SPADE_* settings.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		reportError(os.Stderr, err, extractOpts.debug)
		os.Exit(spadeerrors.ExitCode(err))
	}
}

// reportError prints the single-line diagnostic, followed by the child process output
// when debugging.
func reportError(w io.Writer, err error, debug bool) {
	fmt.Fprintln(w, logging.PresentError("", err))
	if !debug {
		return
	}
	if detail := spadeerrors.DetailOf(err); detail != "" {
		fmt.Fprint(w, detail)
		if detail[len(detail)-1] != '\n' {
			fmt.Fprintln(w)
		}
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&showVersion, "version", "V", false, "Show version information")
}

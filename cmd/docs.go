// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"spade/cli/internal/docs"
	"spade/cli/internal/terminal"
	"spade/cli/internal/xdg"

	"github.com/spf13/cobra"
)

var printLocalPath bool

// docsCmd shows the bundled documentation.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the SPADE documentation",
	Long: `Render the packaged SPADE documentation in the terminal.

With --print-local-path the documentation is written to the spade cache directory and
its location is printed instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if printLocalPath {
			cache, err := xdg.CacheDir()
			if err != nil {
				return err
			}
			path, err := docs.Materialize(filepath.Join(cache, "docs"))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		}
		return docs.Render(cmd.OutOrStdout(), terminal.Width(os.Stdout))
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().BoolVar(&printLocalPath, "print-local-path", false,
		"Print the path to the locally installed documentation index file")
}

package cmd

import (
	"fmt"
	"path/filepath"

	"spade/cli/internal/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd prints the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration spade runs with, after defaults, the config file and
SPADE_* environment variables have been applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}

		file := cfg.File
		if file == "" {
			dir, err := config.Dir()
			if err != nil {
				return err
			}
			file = filepath.Join(dir, config.FileName) + " (not found, using defaults)"
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "# config file: %s\n", file)
		_, err = w.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

// Copyright (c) 2025 SPADE
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"os"
	"strings"

	"spade/cli/internal/config"
	"spade/cli/internal/logging"
	"spade/cli/internal/pipeline"
	"spade/cli/internal/process"
	"spade/cli/internal/request"

	"github.com/spf13/cobra"
)

// extractOptions holds the extract flags.
type extractOptions struct {
	extractedFile  string
	logFile        string
	frame          []string
	frameValue     []string
	step           []string
	field          []string
	history        []string
	historyRegion  []string
	instance       []string
	abaqusCommands []string
	format         string
	buildDir       string
	verbose        bool
	forceOverwrite bool
	debug          bool
	recompile      bool
}

var (
	extractOpts extractOptions

	// executor runs every child process of the extract command.
	executor process.Executor = process.NewOSExecutor()
)

// extractCmd compiles the native extractor against the installed Abaqus and runs it on
// an ODB file.
var extractCmd = &cobra.Command{
	Use:   "extract ODB_FILE.odb",
	Short: "Extract ODB file to H5",
	Long: `Extract data from an Abaqus output database into an HDF5 file.

The first Abaqus command found on PATH is used to compile the extractor, which is then
run against ODB_FILE. List-valued selectors take comma separated values or may be repeated,
e.g. --frame 1,2 or --frame 1 --frame 2.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		req := extractOpts.request(args)
		req.Normalize()

		base, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log := logging.New(cmd.ErrOrStderr(), logging.Threshold(base, req.Verbose, req.Debug))
		log.Debug("Loaded configuration", "file", cfg.File)

		svc := pipeline.New(executor, log, cmd.OutOrStdout(), cmd.ErrOrStderr()).
			WithProgress(buildProgress(os.Stderr, req.Verbose))

		return svc.Extract(cmd.Context(), req, extractOpts.settings(cmd, cfg))
	},
}

// request converts the flags and positional arguments into an extraction request.
func (o extractOptions) request(args []string) *request.Request {
	req := &request.Request{
		ExtractedFile:  o.extractedFile,
		LogFile:        o.logFile,
		Frame:          request.Selector(o.frame),
		FrameValue:     request.Selector(o.frameValue),
		Step:           request.Selector(o.step),
		Field:          request.Selector(o.field),
		History:        request.Selector(o.history),
		HistoryRegion:  request.Selector(o.historyRegion),
		Instance:       request.Selector(o.instance),
		Format:         request.Format(strings.ToLower(strings.TrimSpace(o.format))),
		Verbose:        o.verbose,
		ForceOverwrite: o.forceOverwrite,
		Debug:          o.debug,
		Recompile:      o.recompile,
	}
	if len(args) > 0 {
		req.ODBFile = args[0]
	}
	return req
}

// settings merges the configuration with flags that override it.
func (o extractOptions) settings(cmd *cobra.Command, cfg *config.Config) pipeline.Settings {
	s := pipeline.Settings{
		AbaqusCommands: cfg.Abaqus.Commands,
		BuildTool:      cfg.Build.Tool,
		SourceDir:      cfg.Build.SourceDir,
		BuildDir:       cfg.Build.Dir,
	}
	if cmd.Flags().Changed("abaqus-commands") {
		s.AbaqusCommands = o.abaqusCommands
	}
	if cmd.Flags().Changed("build-dir") {
		s.BuildDir = o.buildDir
	}
	return s
}

func init() {
	rootCmd.AddCommand(extractCmd)

	f := extractCmd.Flags()
	f.StringVarP(&extractOpts.extractedFile, "extracted-file", "e", "", "Name of extracted file. (default: <ODB file name>.h5)")
	f.StringVarP(&extractOpts.logFile, "log-file", "l", "", "Name of log file. (default: <ODB file name>.spade.log)")

	f.StringSliceVar(&extractOpts.frame, "frame", nil, "Get information from the specified frame(s) (default: all)")
	f.StringSliceVar(&extractOpts.frameValue, "frame-value", nil, "Get information from the specified frame value(s) (default: all)")
	f.StringSliceVar(&extractOpts.step, "step", nil, "Get information from the specified step(s) (default: all)")
	f.StringSliceVar(&extractOpts.field, "field", nil, "Get information from the specified field(s) (default: all)")
	f.StringSliceVar(&extractOpts.history, "history", nil, "Get information from the specified history value(s) (default: all)")
	f.StringSliceVar(&extractOpts.historyRegion, "history-region", nil, "Get information from the specified history region(s) (default: all)")
	f.StringSliceVar(&extractOpts.instance, "instance", nil, "Get information from the specified instance(s) (default: all)")

	f.StringSliceVarP(&extractOpts.abaqusCommands, "abaqus-commands", "a", nil,
		"Ordered list of Abaqus executable paths. Use first found (default: from config, abaqus abq2025)")
	f.StringVar(&extractOpts.format, "format", string(request.FormatExtract),
		fmt.Sprintf("Specify the format of the data in the output file {%s}", strings.Join(formatNames(), ",")))
	f.StringVar(&extractOpts.buildDir, "build-dir", "", "Keep the compiled extractor in this directory between runs")

	f.BoolVarP(&extractOpts.verbose, "verbose", "v", false, "Turn on verbose logging")
	f.BoolVarP(&extractOpts.forceOverwrite, "force-overwrite", "f", false, "Overwrite the extracted and log file(s)")
	f.BoolVarP(&extractOpts.debug, "debug", "d", false, "Show build and extractor diagnostics")
	f.BoolVar(&extractOpts.recompile, "recompile", false, "Force recompiling the extractor")
	_ = f.MarkHidden("debug")
	_ = f.MarkHidden("recompile")
}

func formatNames() []string {
	var names []string
	for _, f := range request.Formats() {
		names = append(names, string(f))
	}
	return names
}

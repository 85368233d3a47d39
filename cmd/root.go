// Package cmd provides the root command and CLI setup for annogen.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/annogen/internal/adapter"
	"github.com/mouse-blink/annogen/internal/config"
	"github.com/mouse-blink/annogen/internal/controller"
	"github.com/mouse-blink/annogen/internal/domain"
	m "github.com/mouse-blink/annogen/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var templates adapter.TemplateLoader
var reportStore adapter.ReportStore
var annotator domain.Annotator
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	templates = adapter.NewTemplateLoader()
	reportStore = adapter.NewReportStore()
	annotator = domain.NewAnnotator()
	orchestrator = domain.NewOrchestrator(fsAdapter, annotator)
	workflow = domain.NewWorkflow(
		fsAdapter,
		templates,
		reportStore,
		ui,
		orchestrator,
	)
}

const configFlag = "config"

const pathsDescription = `Supports path patterns:
  - ...            recursively scan current directory
  - src/...        recursively scan src directory
  - include src    scan multiple directories (non-recursive)
  - widget.h       a single file
  - --file-list F  read one path per line from F`

const rootLongDescription = `Annogen inserts Doxygen-style annotation blocks into C/C++ sources: the
license header template, a file-level \file block and a \brief/\param/\return
block above every declaration that lacks one.

Without a subcommand it behaves like "annogen run".

` + pathsDescription

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "annogen [paths...]",
		Short:        "Doxygen annotation generator for C/C++ sources",
		Long:         rootLongDescription,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(runArgs(args))
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(configFlag, "", "config file (default is ./.annogen.yaml)")
	flags.String(config.KeyHeader, config.DefaultHeader, "license header template; empty disables the header check")
	flags.String(config.KeyOutputPrefix, config.DefaultOutputPrefix, "file name prefix of annotated copies")
	flags.Bool(config.KeyInPlace, false, "rewrite source files in place instead of writing prefixed copies")
	flags.IntP(config.KeyParallel, "p", 1, "number of files annotated concurrently")
	flags.StringArrayP(config.KeyExclude, "x", nil, "exclude files matching regex (can be repeated)")
	flags.StringSlice(config.KeyExtensions, nil, "source file extensions to scan (default .h,.hh,.hpp,.hxx,.c,.cc,.cpp,.cxx)")
	flags.StringSlice(config.KeyImplExtensions, nil, "extensions that only receive header and file blocks (default .c,.cc,.cpp,.cxx)")
	flags.String(config.KeyFileList, "", "file with one source path per line")
	flags.String(config.KeyReports, config.DefaultReports, "directory the run report is written to")
	flags.String(config.KeyStatusType, "", "return type documented with the status description")
	flags.String(config.KeyStatusDescription, "", "note written under a status return")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String(config.KeyLogFile, "", "also write JSON logs to this file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()

	closeLog()

	if err != nil {
		os.Exit(1)
	}
}

// parsePaths converts positional arguments to paths, defaulting to the
// working directory unless a file list supplies the sources.
func parsePaths(args []string, fileList string) []m.Path {
	if len(args) == 0 && fileList == "" {
		return []m.Path{m.Path(".")}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func estimateArgs(args []string) domain.EstimateArgs {
	return domain.EstimateArgs{
		Paths:          parsePaths(args, cfg.FileList),
		FileList:       m.Path(cfg.FileList),
		Exclude:        cfg.Exclude,
		Extensions:     cfg.Extensions,
		Header:         m.Path(cfg.Header),
		Vocabulary:     cfg.Vocabulary(),
		ImplExtensions: cfg.ImplExtensions,
		OutputPrefix:   cfg.OutputPrefix,
		InPlace:        cfg.InPlace,
	}
}

func runArgs(args []string) domain.RunArgs {
	return domain.RunArgs{
		EstimateArgs: estimateArgs(args),
		Threads:      cfg.Parallel,
		Reports:      m.Path(cfg.Reports),
	}
}

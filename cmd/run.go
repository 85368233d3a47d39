package cmd

import (
	"github.com/spf13/cobra"
)

const runLongDescription = `Annotate every selected source file.

Annotated copies are written next to the source as <prefix><name>
(default prefix "test_"); --in-place rewrites the sources instead. Files
carrying an annogen:ignore directive are left alone. A report of the run is
saved to the reports directory and the command fails if any file failed.

` + pathsDescription

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [paths...]",
		Short: "Annotate source files",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Run(runArgs(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

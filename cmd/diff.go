package cmd

import (
	"github.com/spf13/cobra"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [paths...]",
		Short: "Show the changes a run would make",
		Long:  "Print a line diff of every file a run would change, without writing anything.\n\n" + pathsDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Diff(estimateArgs(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

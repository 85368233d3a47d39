package cmd

import (
	"github.com/spf13/cobra"
)

const listLongDescription = `List source files and the annotation blocks a run would add to each,
without writing anything.

` + pathsDescription

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and annotation counts",
		Long:  listLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Estimate(estimateArgs(args))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

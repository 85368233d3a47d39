package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/annogen/internal/domain"
	m "github.com/mouse-blink/annogen/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the report of the last run",
		Long:  "View the report of the last run from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(domain.ViewArgs{Reports: m.Path(cfg.Reports)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

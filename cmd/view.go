package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mole-works/mend/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()
var viewReportsFlag string

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated analysis reports",
		Long:  "View previously generated analysis reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			workflow := newWorkflow(cmd, true)

			return workflow.View(m.Path(viewReportsFlag))
		},
	}
	cmd.Flags().StringVarP(&viewReportsFlag, "reports", "r", ".mend-reports", "directory to load analysis reports from")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

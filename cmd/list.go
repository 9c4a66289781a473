package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List C source files that would be analyzed",
		RunE: func(cmd *cobra.Command, args []string) error {
			workflow := newWorkflow(cmd, true)

			sources, err := workflow.Sources(parsePaths(args), listExcludeFlags)
			if err != nil {
				return err
			}

			if len(sources) == 0 {
				cmd.Println("No C source files found")
				return nil
			}

			for _, source := range sources {
				cmd.Println(string(source.Origin))
			}

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

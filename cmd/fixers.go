package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mole-works/mend/internal/domain/fixers"
)

// fixersCmd represents the fixers command.
var fixersCmd = newFixersCmd()

func newFixersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixers",
		Short: "List built-in repair strategies in priority order",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			var buffer bytes.Buffer

			table := tablewriter.NewWriter(&buffer)
			table.SetHeader([]string{"#", "Name", "Node Type"})
			table.SetBorder(false)
			table.SetCenterSeparator("")

			for i, fixer := range fixers.All() {
				table.Append([]string{
					fmt.Sprintf("%d", i+1),
					fixer.Name(),
					fixer.NodeType(),
				})
			}

			table.Render()
			cmd.Print(buffer.String())

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(fixersCmd)
}

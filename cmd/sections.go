package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neoshell/sysinfo/core/report"
)

// sectionsCmd lists the report groups in the order they print.
var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Show the report sections in output order.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range report.SectionNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

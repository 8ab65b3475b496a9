package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/neoshell/sysinfo/core/hos"
)

// envCmd prints the environment as the reporter sees it.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the environment visible to the reporter.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		env := hos.New().Environ()
		sort.Strings(env)
		for _, envDef := range env {
			fmt.Fprintln(cmd.OutOrStdout(), envDef)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}

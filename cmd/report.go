package cmd

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/neoshell/sysinfo/core/config"
	"github.com/neoshell/sysinfo/core/hos"
	"github.com/neoshell/sysinfo/core/report"
)

// reportCmd represents the report command, the same action as the bare tool.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the system information report.",
	Args:  cobra.ExactArgs(0),
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	configuration, err := loadConfig()
	if err != nil {
		return err
	}

	// Optional overrides for the identity variables; a missing file is fine.
	_ = godotenv.Load(filepath.Join(cfgPath, config.EnvFileName))

	reporter := &report.Reporter{
		Config: configuration,
		OS:     hos.New(),
		Out:    cmd.OutOrStdout(),
	}
	reporter.Run()
	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

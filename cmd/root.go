package cmd

import (
	"errors"
	"io/fs"
	"log"

	"github.com/spf13/cobra"

	"github.com/neoshell/sysinfo/core/config"
)

var cfgPath string

// loadConfig returns the configuration, falling back to the built-in
// defaults when none has been initialized so the report always runs.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No config found, using defaults. Run init to create one.")
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd represents the base command; invoked bare it prints the report.
var rootCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "NeoShell system information reporter",
	Long:  `Prints a fixed report of environment and host facts to stdout.`,
	Args:  cobra.ExactArgs(0),
	RunE:  runReport,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/uconfig/internal/cli"
)

var (
	// Global flags (available to all commands)
	verbose bool
	noColor bool

	// settings holds ~/.uconfig/config.yaml merged with UCONFIG_* variables
	settings = cli.DefaultCLIConfig()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "uconfig",
	Short: "Inspect, compare and publish typed configuration documents",
	Long: `uconfig works with JSON and YAML configuration documents whose values are
restricted to null, bool, int, float, string, list and map.

Documents are loaded as configs: tuples become lists and every value is
checked against the allowed types before any command runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := cli.LoadCLIConfig()
		if err != nil {
			return err
		}
		settings = loaded
		cli.ConfigureColor(cmd.OutOrStdout(), noColor || settings.NoColor)
		return nil
	},
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Add subcommands to root
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(configMapCmd)
	rootCmd.AddCommand(serveCmd)
}

// intFlag returns the flag value when it was set, otherwise fallback.
func intFlag(cmd *cobra.Command, name string, value, fallback int) int {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

// stringFlag returns the flag value when it was set, otherwise fallback.
func stringFlag(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

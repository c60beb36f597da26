package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/uconfig/internal/cli"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check that configuration documents only hold allowed values",
	Long: `Load each document and report whether it is a valid config.

Examples:
  uconfig validate app.json
  uconfig validate -v configs/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunValidate(cmd.OutOrStdout(), args, cli.ValidateOptions{Verbose: verbose})
	},
}

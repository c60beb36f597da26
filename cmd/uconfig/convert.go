package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/uconfig/internal/cli"
)

var (
	// Convert command flags
	convertIndent int
	convertForce  bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a configuration document between JSON and YAML",
	Long: `Load a config and save it again; formats follow the file extensions.

Examples:
  uconfig convert app.yaml app.json
  uconfig convert app.json app.yml --force`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunConvert(cmd.OutOrStdout(), args[0], args[1], cli.ConvertOptions{
			Indent: intFlag(cmd, "indent", convertIndent, settings.Indent),
			Force:  convertForce,
		})
	},
}

func init() {
	convertCmd.Flags().IntVar(&convertIndent, "indent", 2, "JSON indent width")
	convertCmd.Flags().BoolVar(&convertForce, "force", false, "Overwrite the output file")
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/uconfig/internal/cli"
)

var (
	// Show command flags
	showFormat string
	showIndent int
	showRepr   bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a configuration document",
	Long: `Print a config after normalization, as JSON or YAML.

Examples:
  uconfig show app.yaml
  uconfig show app.yaml --format yaml
  uconfig show app.json --repr`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunShow(cmd.OutOrStdout(), args[0], cli.ShowOptions{
			Format: stringFlag(cmd, "format", showFormat, settings.Format),
			Indent: intFlag(cmd, "indent", showIndent, settings.Indent),
			Repr:   showRepr,
		})
	},
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "json", "Output format (json or yaml)")
	showCmd.Flags().IntVar(&showIndent, "indent", 2, "JSON indent width")
	showCmd.Flags().BoolVar(&showRepr, "repr", false, "Print the config's string representation")
}

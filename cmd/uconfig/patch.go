package main

import (
	"github.com/spf13/cobra"

	"github.com/nauticalab/uconfig/internal/cli"
)

var (
	// Patch command flags
	patchOutput string
	patchIndent int
)

// patchCmd represents the patch command
var patchCmd = &cobra.Command{
	Use:   "patch <file> <patch>",
	Short: "Apply an RFC 6902 JSON patch to a config",
	Long: `Apply a JSON patch (written as JSON or YAML) to a config. The patched
document is validated before it is printed or saved.

Examples:
  uconfig patch app.json prod-overrides.json
  uconfig patch app.yaml overrides.yaml -o app-prod.yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunPatch(cmd.OutOrStdout(), args[0], args[1], cli.PatchOptions{
			Output: patchOutput,
			Indent: intFlag(cmd, "indent", patchIndent, settings.Indent),
		})
	},
}

func init() {
	patchCmd.Flags().StringVarP(&patchOutput, "output", "o", "", "Write the patched config to this file")
	patchCmd.Flags().IntVar(&patchIndent, "indent", 2, "JSON indent width")
}
